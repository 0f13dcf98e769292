package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var (
	configFile string
	rootCmd    = &cobra.Command{
		Use:     "nyaarss",
		Short:   "Searches nyaa's rss feeds for episodes, batches and movies.",
		Version: version,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	var verbose bool
	var baseURL, debugHTTP, parser string
	flags.StringVar(&configFile, "config", "", "The config file to use, defaults to ~/.nyaarss/nyaarss.yaml")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
	flags.StringVar(&baseURL, "base-url", "", "The index to search on")
	flags.StringVar(&debugHTTP, "debug-http", "", "Log http traffic: basic or body")
	flags.StringVar(&parser, "parser", "", "The feed parser to use: tolerant or strict")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("debug_http", flags.Lookup("debug-http"))
	_ = viper.BindPFlag("parser", flags.Lookup("parser"))
	viper.SetEnvPrefix("NYAARSS")
	_ = viper.BindEnv("verbose")
	_ = viper.BindEnv("base_url")
	_ = viper.BindEnv("debug_http")
	_ = viper.BindEnv("parser")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
