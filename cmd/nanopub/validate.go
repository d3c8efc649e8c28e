// Copyright Science Live Hub, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/generate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config-file...]",
	Short: "Check config files without writing any output",
	Long: `Validate loads each configuration file and checks every record's
required fields, reporting per-record diagnostics. Nothing is rendered
or written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, configPath := range args {
		cfg, err := generate.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stdout, "invalid: %s (%v)\n", configPath, err)
			invalid++
			continue
		}
		fmt.Fprintf(os.Stdout, "%s:\n", configPath)
		invalid += generate.Validate(cfg, os.Stdout)
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s) or config(s)", invalid)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
