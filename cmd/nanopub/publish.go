// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/ledger"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/registry"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/sign"
)

var publishCmd = &cobra.Command{
	Use:   "publish [path...]",
	Short: "Sign and publish documents to the nanopublication network",
	Long: `Publish delegates each TriG document to the external nanopub client,
which signs it with the profile key pair and submits it to the network.
Use --test-server to target the test network while iterating; published
test nanopubs carry no long-term guarantees. Publications are recorded in
the local ledger, and --verify checks each published URI against the
registry afterwards.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	testServer := boolFlagOrConfig(cmd, "test-server", pipelineConfig().Signing.TestServer)
	verify, _ := cmd.Flags().GetBool("verify")
	noLedger, _ := cmd.Flags().GetBool("no-ledger")

	client, paths, err := signingSetup(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Using nanopub client: %s\n", client.Name())
	if testServer {
		fmt.Fprintln(os.Stderr, "Publishing to the TEST network")
	}

	result := sign.PublishAll(client, paths, testServer, os.Stdout)

	if !noLedger && len(result.Published) > 0 {
		if err := recordPublications(cmd, result.Published, testServer); err != nil {
			fmt.Fprintf(os.Stderr, "warning: ledger update failed: %v\n", err)
		}
	}

	if verify && len(result.Published) > 0 {
		if err := verifyPublications(cmd, result.Published, testServer); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed publishing", result.Failed)
	}
	return nil
}

func recordPublications(cmd *cobra.Command, published []sign.Published, testServer bool) error {
	store, err := ledger.NewStore(ledgerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	now := time.Now()
	for _, p := range published {
		err := store.RecordPublished(ctx, p.Path, p.URI, networkName(testServer), now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return nil
}

func verifyPublications(cmd *cobra.Command, published []sign.Published, testServer bool) error {
	client := registry.NewClient(testServer, registryConfig())
	ctx := context.Background()

	missing := 0
	for _, p := range published {
		found, err := client.Resolve(ctx, p.URI)
		if err != nil {
			fmt.Fprintf(os.Stdout, "verify failed: %s (%v)\n", p.URI, err)
			missing++
			continue
		}
		if !found {
			fmt.Fprintf(os.Stdout, "not resolvable yet: %s\n", p.URI)
			missing++
			continue
		}
		fmt.Fprintf(os.Stdout, "verified: %s\n", p.URI)
	}

	if missing > 0 {
		return fmt.Errorf("%d publication(s) did not verify", missing)
	}
	return nil
}

func networkName(testServer bool) string {
	if testServer {
		return "test"
	}
	return "production"
}

func init() {
	addSigningFlags(publishCmd)
	publishCmd.Flags().Bool("test-server", false, "publish to the test network")
	publishCmd.Flags().Bool("verify", false, "check each published URI against the registry")
	publishCmd.Flags().String("ledger-dir", "ledger", "directory for the publication ledger")
	publishCmd.Flags().Bool("no-ledger", false, "skip recording publications in the ledger")

	rootCmd.AddCommand(publishCmd)
}
