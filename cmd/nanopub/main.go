// Copyright Science Live Hub, 2026. All rights reserved.

// Package main is the entry point for the nanopub CLI: it turns
// configuration files of structured research statements into
// nanopublication documents and hands them to the external client for
// signing and publication.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/secrets"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the nanopub CLI.
var rootCmd = &cobra.Command{
	Use:   "nanopub",
	Short: "Generate, sign, and publish nanopublications from config files",
	Long: `nanopub builds nanopublication documents (TriG) from JSON or YAML
configuration files describing research statements: AIDA sentences,
software and dataset descriptions, CiTO citations, comments, and
Wikidata-style statements.

Each pipeline stage is a subcommand: generate renders documents, validate
checks configs without writing, sign and publish delegate to the external
nanopub client, status verifies publications against the registry, and
ledger tracks everything in a local database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nanopub.yaml or ~/.config/nanopub/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nanopub")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nanopub"))
		}
	}

	viper.SetEnvPrefix("NANOPUB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// secretDefault returns value when non-empty, otherwise the matching key
// from the secrets directory.
func secretDefault(key, value string) string {
	if value != "" {
		return value
	}
	return loadedSecrets[key]
}

// pipelineConfig unmarshals the viper config into the pipeline settings.
// Unset keys leave zero values; flags override per field.
func pipelineConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config: %v\n", err)
		return types.PipelineConfig{}
	}
	return cfg
}

// flagOrConfig resolves a string setting: an explicitly set flag wins over
// the config file, which wins over the flag default.
func flagOrConfig(cmd *cobra.Command, name, configured string) string {
	value, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) || configured == "" {
		return value
	}
	return configured
}

// boolFlagOrConfig resolves a boolean setting the same way; the config file
// can only turn a default-false flag on, not veto an explicit flag.
func boolFlagOrConfig(cmd *cobra.Command, name string, configured bool) bool {
	value, _ := cmd.Flags().GetBool(name)
	if cmd.Flags().Changed(name) {
		return value
	}
	return value || configured
}

// registryConfig merges the config file registry settings with the
// registry-api-token secret.
func registryConfig() types.RegistryConfig {
	cfg := pipelineConfig().Registry
	cfg.APIToken = secretDefault("registry-api-token", cfg.APIToken)
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
