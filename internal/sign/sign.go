// Copyright Science Live Hub, 2026. All rights reserved.

package sign

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

// Published records one successfully published document.
type Published struct {
	Path string
	URI  string
}

// BatchResult holds the outcome of a sign or publish run.
type BatchResult struct {
	Signed    []string
	Published []Published
	Failed    int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return len(r.Signed) + len(r.Published) + r.Failed
}

// HasFailures reports whether any documents failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// CheckProfile loads the signing profile and verifies it is complete enough
// for the external client to sign with. An empty path uses the default
// location. Profiles that omit orcid_id fall back to fallbackORCID, so the
// identity can live in the secrets directory instead of the profile file.
func CheckProfile(cfg types.SigningConfig, fallbackORCID string) (*types.Profile, error) {
	profile, err := types.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}
	if profile.ORCIDID == "" {
		profile.ORCIDID = fallbackORCID
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// CollectPaths expands the argument list into TriG document paths. A
// directory argument is walked recursively for .trig files. Already-signed
// documents (signed.* files) are skipped, whether named explicitly or found
// during a walk, so re-running over an output tree does not double-sign and
// the ledger only ever sees the unsigned paths it recorded at generation.
func CollectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			if strings.HasPrefix(filepath.Base(arg), SignedPrefix) {
				continue
			}
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			base := d.Name()
			if filepath.Ext(base) != ".trig" || strings.HasPrefix(base, SignedPrefix) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}

	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .trig documents found in %s", strings.Join(args, ", "))
	}
	return paths, nil
}

// SignAll signs every document, continuing past failures and reporting
// progress on w.
func SignAll(c Client, paths []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, path := range paths {
		signed, err := c.Sign(path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "signed:  %s -> %s\n", path, signed)
		result.Signed = append(result.Signed, signed)
	}

	fmt.Fprintf(w, "\nBatch summary: %d signed, %d failed (total: %d)\n",
		len(result.Signed), result.Failed, result.Total())
	return result
}

// PublishAll signs and publishes every document, continuing past failures
// and reporting progress on w.
func PublishAll(c Client, paths []string, testServer bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, path := range paths {
		uri, err := c.Publish(path, testServer)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "published: %s -> %s\n", path, uri)
		result.Published = append(result.Published, Published{Path: path, URI: uri})
	}

	fmt.Fprintf(w, "\nBatch summary: %d published, %d failed (total: %d)\n",
		len(result.Published), result.Failed, result.Total())
	return result
}
