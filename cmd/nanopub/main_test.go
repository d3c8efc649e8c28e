// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("output-dir", "output", "")
	cmd.Flags().Bool("test-server", false, "")
	return cmd
}

func TestSecretDefault(t *testing.T) {
	loadedSecrets = map[string]string{"registry-api-token": "tok_xyz789"}
	t.Cleanup(func() { loadedSecrets = nil })

	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"explicit value wins", "registry-api-token", "from-config", "from-config"},
		{"secret fills empty value", "registry-api-token", "", "tok_xyz789"},
		{"unknown key stays empty", "missing-key", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := secretDefault(tt.key, tt.value); got != tt.want {
				t.Errorf("secretDefault(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestFlagOrConfig(t *testing.T) {
	t.Run("flag default when config empty", func(t *testing.T) {
		cmd := newTestCmd()
		if got := flagOrConfig(cmd, "output-dir", ""); got != "output" {
			t.Errorf("got %q, want flag default", got)
		}
	})

	t.Run("config overrides flag default", func(t *testing.T) {
		cmd := newTestCmd()
		if got := flagOrConfig(cmd, "output-dir", "docs"); got != "docs" {
			t.Errorf("got %q, want config value", got)
		}
	})

	t.Run("explicit flag overrides config", func(t *testing.T) {
		cmd := newTestCmd()
		if err := cmd.Flags().Set("output-dir", "custom"); err != nil {
			t.Fatal(err)
		}
		if got := flagOrConfig(cmd, "output-dir", "docs"); got != "custom" {
			t.Errorf("got %q, want explicit flag value", got)
		}
	})
}

func TestBoolFlagOrConfig(t *testing.T) {
	t.Run("config turns default-false flag on", func(t *testing.T) {
		cmd := newTestCmd()
		if !boolFlagOrConfig(cmd, "test-server", true) {
			t.Error("config true should enable the setting")
		}
	})

	t.Run("unset flag and config stay off", func(t *testing.T) {
		cmd := newTestCmd()
		if boolFlagOrConfig(cmd, "test-server", false) {
			t.Error("setting should stay off")
		}
	})

	t.Run("explicit flag wins over config", func(t *testing.T) {
		cmd := newTestCmd()
		if err := cmd.Flags().Set("test-server", "false"); err != nil {
			t.Fatal(err)
		}
		if boolFlagOrConfig(cmd, "test-server", true) {
			t.Error("explicit false flag should beat config true")
		}
	})
}

func TestPipelineConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("generation.output_dir", "docs")
	viper.Set("signing.test_server", true)
	viper.Set("signing.container_image", "nanopub/nanopub-java:latest")
	viper.Set("registry.max_retries", 3)
	viper.Set("registry.timeout", 10*time.Second)
	viper.Set("ledger.ledger_dir", "state")

	cfg := pipelineConfig()
	if cfg.Generation.OutputDir != "docs" {
		t.Errorf("output dir = %q", cfg.Generation.OutputDir)
	}
	if !cfg.Signing.TestServer {
		t.Error("test_server not picked up")
	}
	if cfg.Signing.ContainerImage != "nanopub/nanopub-java:latest" {
		t.Errorf("container image = %q", cfg.Signing.ContainerImage)
	}
	if cfg.Registry.MaxRetries != 3 {
		t.Errorf("max retries = %d", cfg.Registry.MaxRetries)
	}
	if cfg.Registry.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Registry.Timeout)
	}
	if cfg.Ledger.LedgerDir != "state" {
		t.Errorf("ledger dir = %q", cfg.Ledger.LedgerDir)
	}
}

func TestRegistryConfigMergesSecretToken(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	loadedSecrets = map[string]string{"registry-api-token": "tok_xyz789"}
	t.Cleanup(func() { loadedSecrets = nil })

	if got := registryConfig().APIToken; got != "tok_xyz789" {
		t.Errorf("token = %q, want secret value", got)
	}

	viper.Set("registry.api_token", "from-config")
	if got := registryConfig().APIToken; got != "from-config" {
		t.Errorf("token = %q, want config value to win", got)
	}
}
