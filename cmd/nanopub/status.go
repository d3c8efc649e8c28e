// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/ledger"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/registry"
)

var statusCmd = &cobra.Command{
	Use:   "status [uri...]",
	Short: "Check that published nanopublications resolve on the network",
	Long: `Status resolves nanopublication URIs against the registry. With no
arguments it checks every published entry in the local ledger; otherwise
it checks the given URIs or artifact codes directly.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	testServer := boolFlagOrConfig(cmd, "test-server", pipelineConfig().Signing.TestServer)

	uris := args
	if len(uris) == 0 {
		entries, err := publishedLedgerEntries(cmd, testServer)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No published nanopublications in the ledger.")
			return nil
		}
		for _, e := range entries {
			uris = append(uris, e.PublishedURI)
		}
	}

	client := registry.NewClient(testServer, registryConfig())
	ctx := context.Background()

	missing := 0
	for _, uri := range uris {
		found, err := client.Resolve(ctx, uri)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stdout, "error:    %s (%v)\n", uri, err)
			missing++
		case !found:
			fmt.Fprintf(os.Stdout, "missing:  %s\n", uri)
			missing++
		default:
			fmt.Fprintf(os.Stdout, "resolved: %s\n", uri)
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d of %d resolved\n", len(uris)-missing, len(uris))
	if missing > 0 {
		return fmt.Errorf("%d nanopublication(s) did not resolve", missing)
	}
	return nil
}

func publishedLedgerEntries(cmd *cobra.Command, testServer bool) ([]ledger.Entry, error) {
	store, err := ledger.NewStore(ledgerConfig(cmd))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.List(context.Background(), ledger.QueryOptions{
		Network:       networkName(testServer),
		PublishedOnly: true,
		MaxResults:    exportAll,
	})
}

func init() {
	statusCmd.Flags().Bool("test-server", false, "check against the test network")
	statusCmd.Flags().String("ledger-dir", "ledger", "directory for the publication ledger")

	rootCmd.AddCommand(statusCmd)
}
