// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/generate"
	"github.com/ScienceLiveHub/nanopub-notebooks/internal/ledger"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [config-file...]",
	Short: "Render nanopublication documents from config files",
	Long: `Generate loads each configuration file, validates its records, and
writes one TriG document per record under output/<type>/<id>.trig.
Invalid records are reported and skipped; the rest of the batch continues.
Every rendered document is recorded in the local ledger.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outputDir := flagOrConfig(cmd, "output-dir", pipelineConfig().Generation.OutputDir)
	noLedger, _ := cmd.Flags().GetBool("no-ledger")

	var store *ledger.Store
	if !noLedger {
		var err error
		store, err = ledger.NewStore(ledgerConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
	}

	gen := types.GenerationConfig{OutputDir: outputDir}
	ts := time.Now()
	failed := 0

	for _, configPath := range args {
		cfg, err := generate.LoadConfig(configPath)
		if err != nil {
			return err
		}

		result := generate.RunAt(cfg, gen, ts, os.Stdout)
		failed += result.Failed

		if store != nil {
			if err := recordBatch(store, configPath, ts, result); err != nil {
				fmt.Fprintf(os.Stderr, "warning: ledger update failed: %v\n", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d record(s) failed", failed)
	}
	return nil
}

func recordBatch(store *ledger.Store, configPath string, ts time.Time, result generate.BatchResult) error {
	ctx := context.Background()
	runID, err := store.BeginRun(ctx, configPath)
	if err != nil {
		return err
	}
	for _, r := range result.Written {
		entry := ledger.Entry{
			RecordID:       r.Record.ID,
			Type:           string(r.Record.Type),
			Label:          r.Record.DisplayLabel(),
			SourceConfig:   configPath,
			Path:           r.Path,
			PlaceholderURI: r.URI,
			GeneratedAt:    ts,
			RunID:          runID,
		}
		if err := store.RecordGenerated(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func ledgerConfig(cmd *cobra.Command) types.LedgerConfig {
	cfg := pipelineConfig().Ledger
	cfg.LedgerDir = flagOrConfig(cmd, "ledger-dir", cfg.LedgerDir)
	if cfg.LedgerDir == "" {
		cfg.LedgerDir = "ledger"
	}
	return cfg
}

func init() {
	generateCmd.Flags().String("output-dir", "output", "base directory for rendered documents")
	generateCmd.Flags().String("ledger-dir", "ledger", "directory for the publication ledger")
	generateCmd.Flags().Bool("no-ledger", false, "skip recording rendered documents in the ledger")

	rootCmd.AddCommand(generateCmd)
}
