package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that talk to the
// nanopublication network.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "nanopub-notebooks/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// GenerationConfig holds settings for the generation stage.
type GenerationConfig struct {
	// OutputDir is the base directory for rendered documents. Each record
	// is written to OutputDir/<type>/<id>.trig.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// SigningConfig holds settings for the signing and publishing stage.
type SigningConfig struct {
	// ProfilePath is the signing profile location
	// (default ~/.nanopub/profile.yaml).
	ProfilePath string `json:"profile_path,omitempty" yaml:"profile_path,omitempty" mapstructure:"profile_path"`

	// TestServer targets the test network instead of production.
	TestServer bool `json:"test_server" yaml:"test_server" mapstructure:"test_server"`

	// ContainerImage is the fallback client image when no local np binary
	// is on PATH.
	ContainerImage string `json:"container_image,omitempty" yaml:"container_image,omitempty" mapstructure:"container_image"`
}

// RegistryConfig holds settings for the registry client used to verify
// published nanopublications.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxRetries is the number of retry attempts for rate-limited or
	// temporarily unavailable registry endpoints (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// APIToken authenticates registry requests when set. Usually supplied
	// through the secrets directory (registry-api-token) rather than the
	// config file.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty" mapstructure:"api_token"`
}

// LedgerConfig holds settings for the publication ledger.
type LedgerConfig struct {
	// LedgerDir is the directory holding ledger.db and export files.
	LedgerDir string `json:"ledger_dir" yaml:"ledger_dir" mapstructure:"ledger_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// PipelineConfig groups all stage configurations. The CLI unmarshals the
// tool-level config file into it; command-line flags override per field.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
	Signing    SigningConfig    `json:"signing" yaml:"signing" mapstructure:"signing"`
	Registry   RegistryConfig   `json:"registry" yaml:"registry" mapstructure:"registry"`
	Ledger     LedgerConfig     `json:"ledger" yaml:"ledger" mapstructure:"ledger"`
}
