package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sp0x/nyaarss/config"
)

var appConfig config.ViperConfig

func initConfig() {
	config.RegisterDefaults()
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(config.GetConfigDir())
		viper.SetConfigType("yaml")
		viper.SetConfigName(config.AppName())
	}
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			err = viper.SafeWriteConfig()
			if err != nil {
				log.Warningf("error while writing default config file: %v\n", err)
			}
		} else {
			log.Warningf("error while reading config file: %v\n", err)
			os.Exit(1)
		}
	}
	log.SetLevel(config.GetMinLogLevel(&appConfig))
}
