// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmerge CLI.
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

// rootCmd is the base command for the pubmerge CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmerge",
	Short: "Merge and deduplicate faculty publication exports",
	Long: `pubmerge reconciles per-author publication lists exported independently by
Scopus and Web of Science into a single deduplicated workbook, dropping the
placeholder rows some exports use to inflate publication counts.

The merge subcommand runs the pipeline over two export files; the faculty
subcommands maintain a local registry and import merged reports into it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmerge.yaml or ~/.config/pubmerge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmerge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmerge"))
		}
	}

	viper.SetEnvPrefix("PUBMERGE")
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
