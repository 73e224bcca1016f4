// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fuzzplot CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the fuzzplot CLI.
var rootCmd = &cobra.Command{
	Use:   "fuzzplot",
	Short: "Plot fuzzy-set membership functions",
	Long: `fuzzplot evaluates and plots the standard fuzzy-set membership functions
(linear, triangle, trapezoid, S, Z, pi, gauss) over a numeric domain.

Each function is configured by a small set of shape parameters and an
optional output range [y_min, y_max]. Plots are written as image files;
the eval and describe subcommands expose the same functions textually.
Run 'fuzzplot session' for an interactive prompt loop.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fuzzplot.yaml or ~/.config/fuzzplot/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	viper.SetDefault("plot.samples", 500)
	viper.SetDefault("plot.output_dir", "plots")
	viper.SetDefault("plot.width", 16)
	viper.SetDefault("plot.height", 12)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fuzzplot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fuzzplot"))
		}
	}

	viper.SetEnvPrefix("FUZZPLOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
