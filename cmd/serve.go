package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sp0x/nyaarss/indexer"
	"github.com/sp0x/nyaarss/server"
)

func init() {
	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Serves searches over http, as json, rss or atom.",
		Run:   serve,
	}
	port := 5000
	enablePprof := false
	cmdFlags := cmdServe.Flags()
	cmdFlags.IntVarP(&port, "port", "p", 5000, "The port to listen on.")
	cmdFlags.BoolVar(&enablePprof, "pprof", false, "Expose pprof under /debug/pprof.")
	_ = viper.BindEnv("port")
	_ = viper.BindPFlag("port", cmdFlags.Lookup("port"))
	_ = viper.BindEnv("pprof")
	_ = viper.BindPFlag("pprof", cmdFlags.Lookup("pprof"))
	rootCmd.AddCommand(cmdServe)
}

func serve(_ *cobra.Command, _ []string) {
	runner, err := indexer.NewRunnerFromConfig(&appConfig, version)
	if err != nil {
		fmt.Printf("Couldn't initialize: %s", err)
		os.Exit(1)
	}
	rserver := server.NewServer(&appConfig, runner)
	rserver.Params.Version = version
	err = rserver.Listen()
	if err != nil {
		fmt.Print(err)
	}
}
