package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ViperConfig reads from the global viper instance.
type ViperConfig struct{}

// RegisterDefaults installs the defaults as viper fallbacks, without overriding loaded values.
func RegisterDefaults() {
	viper.SetDefault("base_url", DefaultBaseURL)
	viper.SetDefault("category", DefaultCategory)
	viper.SetDefault("filter", DefaultFilter)
	viper.SetDefault("trusted_seeders", DefaultTrustedSeeders)
	viper.SetDefault("batch_keywords", DefaultBatchKeywords)
	viper.SetDefault("trackers", []string{})
	viper.SetDefault("parser", DefaultParser)
	viper.SetDefault("http_timeout", DefaultHTTPTimeout)
	viper.SetDefault("port", DefaultPort)
	viper.SetDefault("verbose", false)
	viper.SetDefault("debug_http", "")
	viper.SetDefault("pprof", false)
}

func (v *ViperConfig) Set(key, value interface{}) {
	viper.Set(fmt.Sprintf("%s", key), value)
}

func (v *ViperConfig) Get(key string) interface{} {
	return viper.Get(key)
}

func (v *ViperConfig) GetInt(param string) int {
	return viper.GetInt(param)
}

func (v *ViperConfig) GetString(param string) string {
	return viper.GetString(param)
}

func (v *ViperConfig) GetStringSlice(param string) []string {
	return viper.GetStringSlice(param)
}

func (v *ViperConfig) GetBool(param string) bool {
	return viper.GetBool(param)
}

func (v *ViperConfig) GetDuration(param string) time.Duration {
	return viper.GetDuration(param)
}
