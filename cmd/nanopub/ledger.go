// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/ledger"
)

// exportAll is the result limit used when a command needs every entry.
const exportAll = 100000

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect the local publication ledger (list, search, export)",
	Long: `Ledger manages the local SQLite database tracking every generated and
published nanopublication. Use subcommands to list entries, search labels,
or export the ledger.`,
}

// --- list subcommand ---

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries, newest first",
	RunE:  runLedgerList,
}

func runLedgerList(cmd *cobra.Command, args []string) error {
	store, err := ledger.NewStore(ledgerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), ledgerOptsFromFlags(cmd, nil))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatLedgerOutput(entries, jsonOutput)
}

// --- search subcommand ---

var ledgerSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search ledger entries by label",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLedgerSearch,
}

func runLedgerSearch(cmd *cobra.Command, args []string) error {
	store, err := ledger.NewStore(ledgerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), ledgerOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatLedgerOutput(entries, jsonOutput)
}

func formatLedgerOutput(entries []ledger.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-8s  %-40s  %-10s  %s\n",
		"Record", "Type", "Label", "Network", "Published URI")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, e := range entries {
		label := e.Label
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		record := e.RecordID
		if len(record) > 16 {
			record = record[:13] + "..."
		}
		network := e.Network
		if network == "" {
			network = "-"
		}
		uri := e.PublishedURI
		if uri == "" {
			uri = "-"
		}
		fmt.Fprintf(os.Stdout, "%-16s  %-8s  %-40s  %-10s  %s\n",
			record, e.Type, label, network, uri)
	}

	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

// --- export subcommand ---

var ledgerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to YAML or JSON",
	Long: `Export writes the full ledger (or a filtered subset) to export.yaml
or export.json in the ledger directory. Supports the same filter flags as
list for partial exports.`,
	RunE: runLedgerExport,
}

func runLedgerExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := ledger.NewStore(ledgerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := ledgerOptsFromFlags(cmd, nil)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

// --- shared helpers ---

func ledgerOptsFromFlags(cmd *cobra.Command, args []string) ledger.QueryOptions {
	npType, _ := cmd.Flags().GetString("type")
	network, _ := cmd.Flags().GetString("network")
	publishedOnly, _ := cmd.Flags().GetBool("published")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := ledger.QueryOptions{
		Type:          npType,
		Network:       network,
		PublishedOnly: publishedOnly,
		MaxResults:    limit,
	}
	if len(args) > 0 {
		opts.Query = strings.Join(args, " ")
	}
	return opts
}

func addLedgerFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "filter by nanopublication type: aida, software, dataset, cito, comment, wikidata")
	cmd.Flags().String("network", "", "filter by network: test or production")
	cmd.Flags().Bool("published", false, "only published entries")
	cmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
}

func init() {
	ledgerCmd.PersistentFlags().String("ledger-dir", "ledger", "directory for the publication ledger")

	addLedgerFilterFlags(ledgerListCmd)
	ledgerListCmd.Flags().Bool("json", false, "output entries as JSON")

	addLedgerFilterFlags(ledgerSearchCmd)
	ledgerSearchCmd.Flags().Bool("json", false, "output entries as JSON")

	addLedgerFilterFlags(ledgerExportCmd)
	ledgerExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerSearchCmd)
	ledgerCmd.AddCommand(ledgerExportCmd)

	rootCmd.AddCommand(ledgerCmd)
}
