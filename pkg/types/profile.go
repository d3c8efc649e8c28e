// Copyright Science Live Hub, 2026. All rights reserved.

package types

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Profile is the signing profile consumed by the external nanopub client,
// conventionally stored at ~/.nanopub/profile.yaml. The builder never reads
// the key material itself; it only checks that the profile is complete
// before delegating to the client.
type Profile struct {
	// ORCIDID is the full ORCID URI (e.g. "https://orcid.org/0000-0002-1825-0097").
	ORCIDID string `yaml:"orcid_id"`

	// Name is the publisher's display name.
	Name string `yaml:"name"`

	// PublicKey and PrivateKey are filesystem paths to the RSA key pair.
	PublicKey  string `yaml:"public_key"`
	PrivateKey string `yaml:"private_key"`

	// IntroNanopub is the URI of the introduction nanopub that links the
	// key pair to the ORCID, if one has been published.
	IntroNanopub string `yaml:"introduction_nanopub_uri,omitempty"`
}

// Validate checks that the profile carries everything the signing client needs.
func (p Profile) Validate() error {
	if p.ORCIDID == "" {
		return fmt.Errorf("profile missing orcid_id")
	}
	if p.PrivateKey == "" {
		return fmt.Errorf("profile missing private_key path")
	}
	return nil
}

// DefaultProfilePath returns ~/.nanopub/profile.yaml, or an empty string
// when the home directory cannot be resolved.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nanopub", "profile.yaml")
}

// LoadProfile reads and parses a signing profile. An empty path falls back
// to DefaultProfilePath.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		path = DefaultProfilePath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &p, nil
}
