// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transition-engine CLI.
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

// rootCmd is the base command for the transition-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "transition-engine",
	Short: "Extract transition triplets from regional news digests",
	Long: `transition-engine converts document paragraphs into structured
(context-before, transition-phrase, context-after) triplets for use as
training examples. It segments a document into per-article blocks at a
marker line, locates each listed transition phrase inside its narrative
paragraph with a tolerant matcher, caps per-transition usage, and writes
the selected output representations.

Use extract for one-shot extraction and corpus to archive, search, and
export accepted triplets across runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transition-engine.yaml or ~/.config/transition-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transition-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transition-engine"))
		}
	}

	viper.SetEnvPrefix("TRANSITION_ENGINE")
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
