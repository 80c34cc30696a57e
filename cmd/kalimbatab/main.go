// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kalimbatab CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the kalimbatab CLI.
var rootCmd = &cobra.Command{
	Use:   "kalimbatab",
	Short: "Convert ABC notation into kalimba tablature",
	Long: `kalimbatab converts a musical score in ABC notation into a numbered
kalimba tablature, written as an SVG image and a PDF document.

Each note is mapped onto a tine of the target instrument; notes above the
instrument's range are either dropped or retried one octave lower,
depending on the octave policy.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kalimbatab.yaml or ~/.config/kalimbatab/config.yaml)")
}

func initConfig() {
	viper.SetDefault("tine_count", 17)
	viper.SetDefault("octave_policy", "shift_down")
	viper.SetDefault("output.svg", "kalimba_tab.svg")
	viper.SetDefault("output.pdf", "kalimba_tab.pdf")
	viper.SetDefault("catalog.dir", ".")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kalimbatab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kalimbatab"))
		}
	}

	viper.SetEnvPrefix("KALIMBATAB")
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
