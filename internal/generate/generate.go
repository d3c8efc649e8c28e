// Copyright Science Live Hub, 2026. All rights reserved.

// Package generate drives the read-validate-render-write loop: it loads a
// nanopublication configuration file, renders each record through the
// type dispatch, and writes one TriG document per record.
package generate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/render"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

// OutputExt is the serialization extension for rendered documents.
const OutputExt = ".trig"

// LoadConfig reads and parses a configuration file. JSON is the primary
// format; .yaml/.yml files are accepted for hand-written configs. A file
// that parses but lacks the top-level metadata or nanopublications keys is
// rejected here, before any record is processed.
func LoadConfig(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg types.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.Metadata.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if len(cfg.Nanopublications) == 0 {
		return nil, fmt.Errorf("config %s: no nanopublications defined", path)
	}
	return &cfg, nil
}

// Rendered describes one successfully written document.
type Rendered struct {
	Record *types.NanopubRecord
	Path   string
	URI    string
}

// BatchResult holds the outcome of a generation run.
type BatchResult struct {
	Written []Rendered
	Failed  int
}

// Total returns the number of records processed.
func (r BatchResult) Total() int {
	return len(r.Written) + r.Failed
}

// HasFailures reports whether any records failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run renders every record in cfg and writes the documents under
// gen.OutputDir/<type>/<id>.trig. Records with missing required fields or
// failed writes are reported on w and skipped; the rest of the batch
// continues. All documents from one run share a single timestamp.
func Run(cfg *types.Config, gen types.GenerationConfig, w io.Writer) BatchResult {
	return RunAt(cfg, gen, time.Now(), w)
}

// RunAt is Run with an explicit timestamp, used by tests and by callers
// that stamp several config files identically.
func RunAt(cfg *types.Config, gen types.GenerationConfig, ts time.Time, w io.Writer) BatchResult {
	var result BatchResult
	opts := render.Options{Timestamp: ts}

	seen := make(map[string]bool)
	for i := range cfg.Nanopublications {
		rec := &cfg.Nanopublications[i]

		name := rec.ID
		if name == "" {
			name = fmt.Sprintf("record %d", i)
		}
		if seen[rec.ID] && rec.ID != "" {
			fmt.Fprintf(w, "warning: duplicate id %s overwrites earlier output\n", rec.ID)
		}
		seen[rec.ID] = true

		doc, err := render.Render(rec, cfg.Metadata, opts)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed++
			continue
		}

		path, err := writeDocument(gen.OutputDir, rec, doc)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "rendered: %s -> %s\n", rec.ID, path)
		result.Written = append(result.Written, Rendered{
			Record: rec,
			Path:   path,
			URI:    render.PlaceholderURI(rec),
		})
	}

	fmt.Fprintf(w, "\nBatch summary: %d rendered, %d failed (total: %d)\n",
		len(result.Written), result.Failed, result.Total())
	return result
}

// GenerateFile loads one config file and runs the batch.
func GenerateFile(path string, gen types.GenerationConfig, w io.Writer) (BatchResult, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return BatchResult{}, err
	}
	return Run(cfg, gen, w), nil
}

// Validate checks every record without rendering or writing, reporting
// per-record diagnostics on w. It returns the number of invalid records.
func Validate(cfg *types.Config, w io.Writer) int {
	invalid := 0
	for i := range cfg.Nanopublications {
		rec := &cfg.Nanopublications[i]
		if err := rec.Validate(); err != nil {
			fmt.Fprintf(w, "invalid: %s (%v)\n", rec.ID, err)
			invalid++
			continue
		}
		fmt.Fprintf(w, "ok:      %s (%s)\n", rec.ID, rec.Type)
	}
	fmt.Fprintf(w, "\n%d of %d records valid\n", len(cfg.Nanopublications)-invalid, len(cfg.Nanopublications))
	return invalid
}

// writeDocument writes one rendered document, creating the type directory
// as needed. Existing files with the same name are overwritten.
func writeDocument(outputDir string, rec *types.NanopubRecord, doc string) (string, error) {
	dir := filepath.Join(outputDir, string(rec.Type))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, rec.ID+OutputExt)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
