// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the biblio-screen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the diagnostic logger configured from --log-level at startup.
var logger = zerolog.Nop()

// rootCmd is the base command for the biblio-screen CLI.
var rootCmd = &cobra.Command{
	Use:   "biblio-screen",
	Short: "Screen bibliographic exports for bibliometric analysis",
	Long: `biblio-screen reads a Web of Science style export (tab- or comma-delimited),
labels every record Include, Exclude, or Review with keyword rules, cleans the
keyword fields of included records, and writes the standardized fields
(AU, TI, SO, DE, ID, AB, CR, PY, TC) as a UTF-8 tab-delimited file.

Use "screen" for the full pipeline, "classify" to inspect labels, and
"normalize" to try keyword cleaning on individual strings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := zerolog.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", levelName, err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./biblio-screen.yaml or ~/.config/biblio-screen/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "diagnostic log level: debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("biblio-screen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "biblio-screen"))
		}
	}

	viper.SetEnvPrefix("BIBLIO_SCREEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
