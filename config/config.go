package config

import (
	"os"
	"path"
	"time"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

var appname = "nyaarss"

const (
	DefaultBaseURL        = "https://nyaa.si"
	DefaultCategory       = "1_2"
	DefaultFilter         = "0"
	DefaultTrustedSeeders = 50
	DefaultParser         = "tolerant"
	DefaultPort           = 5000
	DefaultHTTPTimeout    = 30 * time.Second
)

// DefaultBatchKeywords are the title fragments that mark a release as a batch.
var DefaultBatchKeywords = []string{
	"batch", "complete", "vol", "01-", "1-", "season", "s1", "s2", "s3", "s4",
}

//go:generate mockgen -destination=mocks/mock_config.go -package=mocks . Config
type Config interface {
	GetInt(key string) int
	GetString(key string) string
	GetStringSlice(key string) []string
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	Get(key string) interface{}
	Set(key, value interface{})
}

func GetMinLogLevel(c Config) log.Level {
	if c.GetBool("verbose") {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// GetConfigDir returns the directory the config file lives in, creating it if needed.
func GetConfigDir() string {
	home, _ := homedir.Dir()
	dir := path.Join(home, "."+appname)
	_ = os.MkdirAll(dir, os.ModePerm)
	return dir
}

func AppName() string {
	return appname
}
