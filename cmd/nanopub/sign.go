// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/sign"
)

var signCmd = &cobra.Command{
	Use:   "sign [path...]",
	Short: "Sign rendered documents with the external nanopub client",
	Long: `Sign delegates to the external nanopub client (a local np binary, or
the nanopub-java container image) to sign TriG documents with the key pair
from the signing profile. Directory arguments are walked for .trig files;
already-signed documents are skipped. Signed output lands next to each
input as signed.<name>.trig.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSign,
}

func runSign(cmd *cobra.Command, args []string) error {
	client, paths, err := signingSetup(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Using nanopub client: %s\n", client.Name())
	result := sign.SignAll(client, paths, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed signing", result.Failed)
	}
	return nil
}

// signingSetup validates the profile, detects a client, and expands the
// path arguments. Shared by sign and publish.
func signingSetup(cmd *cobra.Command, args []string) (sign.Client, []string, error) {
	cfg := pipelineConfig().Signing
	cfg.ProfilePath = flagOrConfig(cmd, "profile", cfg.ProfilePath)
	cfg.ContainerImage = flagOrConfig(cmd, "image", cfg.ContainerImage)

	if _, err := sign.CheckProfile(cfg, loadedSecrets["orcid"]); err != nil {
		return nil, nil, err
	}

	client, err := sign.DetectClient(cfg.ContainerImage)
	if err != nil {
		return nil, nil, err
	}

	paths, err := sign.CollectPaths(args)
	if err != nil {
		return nil, nil, err
	}
	return client, paths, nil
}

func addSigningFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", "", "signing profile path (default: ~/.nanopub/profile.yaml)")
	cmd.Flags().String("image", "", "container image for the client fallback (default: "+sign.DefaultImage+")")
}

func init() {
	addSigningFlags(signCmd)
	rootCmd.AddCommand(signCmd)
}
