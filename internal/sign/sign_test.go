// Copyright Science Live Hub, 2026. All rights reserved.

package sign

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	runOutputFunc func(name string, args []string, stdout io.Writer) error
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunOutput(name string, args []string, stdout io.Writer) error {
	if m.runOutputFunc != nil {
		return m.runOutputFunc(name, args, stdout)
	}
	return nil
}

func TestDetectClient(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		wantName string
		wantErr  bool
	}{
		{
			name: "np binary preferred",
			exec: &mockExecutor{
				availableBins: map[string]bool{"np": true, "docker": true},
				runnableCmds:  map[string]bool{"docker info": true},
			},
			wantName: "np",
		},
		{
			name: "docker fallback when np missing",
			exec: &mockExecutor{
				availableBins: map[string]bool{"docker": true},
				runnableCmds:  map[string]bool{"docker info": true},
			},
			wantName: "docker",
		},
		{
			name: "podman when docker info fails",
			exec: &mockExecutor{
				availableBins: map[string]bool{"docker": true, "podman": true},
				runnableCmds:  map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "nothing available",
			exec: &mockExecutor{
				availableBins: map[string]bool{},
				runnableCmds:  map[string]bool{},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := detectClient(tt.exec, "")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "no nanopub client available") {
					t.Errorf("error should mention no client available, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Name() != tt.wantName {
				t.Errorf("got client %q, want %q", c.Name(), tt.wantName)
			}
		})
	}
}

func TestLocalClientSign(t *testing.T) {
	exec := &mockExecutor{
		runnableCmds: map[string]bool{"np sign output/aida/claim-001.trig": true},
	}
	c := &localClient{exec: exec}

	signed, err := c.Sign("output/aida/claim-001.trig")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	want := filepath.Join("output", "aida", "signed.claim-001.trig")
	if signed != want {
		t.Errorf("signed path = %q, want %q", signed, want)
	}
}

func TestLocalClientPublish(t *testing.T) {
	exec := &mockExecutor{
		runOutputFunc: func(name string, args []string, stdout io.Writer) error {
			if name != "np" {
				return errors.New("expected np binary")
			}
			if args[0] != "publish" || args[len(args)-1] != "--test" {
				return errors.New("unexpected args: " + strings.Join(args, " "))
			}
			io.WriteString(stdout, "Nanopub published at https://w3id.org/np/RAabc123\n")
			return nil
		},
	}
	c := &localClient{exec: exec}

	uri, err := c.Publish("doc.trig", true)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if uri != "https://w3id.org/np/RAabc123" {
		t.Errorf("uri = %q", uri)
	}
}

func TestContainerClientMountsDocumentDir(t *testing.T) {
	var gotArgs []string
	exec := &mockExecutor{
		runOutputFunc: func(name string, args []string, stdout io.Writer) error {
			gotArgs = append([]string{name}, args...)
			io.WriteString(stdout, "https://w3id.org/np/RAxyz789\n")
			return nil
		},
	}
	c := &containerClient{bin: "docker", image: DefaultImage, exec: exec}

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.trig")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	uri, err := c.Publish(path, false)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if uri != "https://w3id.org/np/RAxyz789" {
		t.Errorf("uri = %q", uri)
	}

	joined := strings.Join(gotArgs, " ")
	if !strings.Contains(joined, "-v "+dir+":/work") {
		t.Errorf("document dir not mounted: %s", joined)
	}
	if !strings.HasSuffix(joined, "publish doc.trig") {
		t.Errorf("client args wrong: %s", joined)
	}
}

func TestParsePublishedURI(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{"bare URI", "https://w3id.org/np/RAabc\n", "https://w3id.org/np/RAabc", false},
		{"URI in sentence", "Published to https://w3id.org/np/RAabc successfully", "https://w3id.org/np/RAabc", false},
		{"last URI wins", "fetched http://example.org/x\nresult https://w3id.org/np/RAfinal", "https://w3id.org/np/RAfinal", false},
		{"no URI", "something went wrong", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePublishedURI(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("uri = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectPaths(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel string) string {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	a := mustWrite("aida/claim-001.trig")
	c := mustWrite("cito/cito-001.trig")
	mustWrite("aida/signed.claim-001.trig") // skipped
	mustWrite("aida/notes.txt")             // skipped

	paths, err := CollectPaths([]string{dir})
	if err != nil {
		t.Fatalf("CollectPaths: %v", err)
	}
	want := []string{a, c}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestCollectPathsEmpty(t *testing.T) {
	dir := t.TempDir()
	_, err := CollectPaths([]string{dir})
	if err == nil || !strings.Contains(err.Error(), "no .trig documents") {
		t.Errorf("err = %v, want no-documents error", err)
	}
}

func TestCollectPathsSkipsExplicitSignedFile(t *testing.T) {
	dir := t.TempDir()
	unsigned := filepath.Join(dir, "claim-001.trig")
	signed := filepath.Join(dir, "signed.claim-001.trig")
	for _, path := range []string{unsigned, signed} {
		if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := CollectPaths([]string{signed, unsigned})
	if err != nil {
		t.Fatalf("CollectPaths: %v", err)
	}
	if len(paths) != 1 || paths[0] != unsigned {
		t.Errorf("paths = %v, want only %q", paths, unsigned)
	}

	_, err = CollectPaths([]string{signed})
	if err == nil || !strings.Contains(err.Error(), "no .trig documents") {
		t.Errorf("err = %v, want no-documents error for signed-only args", err)
	}
}

type stubClient struct {
	failOn map[string]bool
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Sign(path string) (string, error) {
	if s.failOn[path] {
		return "", errors.New("signing failed")
	}
	return signedPath(path), nil
}

func (s *stubClient) Publish(path string, _ bool) (string, error) {
	if s.failOn[path] {
		return "", errors.New("publishing failed")
	}
	return "https://w3id.org/np/RA" + filepath.Base(path), nil
}

func TestSignAllContinuesAfterFailure(t *testing.T) {
	c := &stubClient{failOn: map[string]bool{"b.trig": true}}

	var buf bytes.Buffer
	result := SignAll(c, []string{"a.trig", "b.trig", "c.trig"}, &buf)

	if len(result.Signed) != 2 || result.Failed != 1 {
		t.Errorf("result = %+v", result)
	}
	out := buf.String()
	if !strings.Contains(out, "failed:  b.trig") {
		t.Errorf("missing failure line:\n%s", out)
	}
	if !strings.Contains(out, "Batch summary: 2 signed, 1 failed (total: 3)") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestPublishAllReportsURIs(t *testing.T) {
	c := &stubClient{}

	var buf bytes.Buffer
	result := PublishAll(c, []string{"a.trig"}, true, &buf)

	if result.HasFailures() || len(result.Published) != 1 {
		t.Fatalf("result = %+v", result)
	}
	if result.Published[0].URI != "https://w3id.org/np/RAa.trig" {
		t.Errorf("uri = %q", result.Published[0].URI)
	}
}

func TestCheckProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := `orcid_id: https://orcid.org/0000-0002-1825-0097
name: Josiah Carberry
public_key: /home/jc/.nanopub/id_rsa.pub
private_key: /home/jc/.nanopub/id_rsa
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	profile, err := CheckProfile(types.SigningConfig{ProfilePath: path}, "")
	if err != nil {
		t.Fatalf("CheckProfile: %v", err)
	}
	if profile.Name != "Josiah Carberry" {
		t.Errorf("name = %q", profile.Name)
	}
}

func TestCheckProfileIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("name: Josiah Carberry\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := CheckProfile(types.SigningConfig{ProfilePath: path}, "")
	if err == nil || !strings.Contains(err.Error(), "orcid_id") {
		t.Errorf("err = %v, want missing orcid_id", err)
	}
}

func TestCheckProfileORCIDFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := `name: Josiah Carberry
private_key: /home/jc/.nanopub/id_rsa
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	orcid := "https://orcid.org/0000-0002-1825-0097"
	profile, err := CheckProfile(types.SigningConfig{ProfilePath: path}, orcid)
	if err != nil {
		t.Fatalf("CheckProfile: %v", err)
	}
	if profile.ORCIDID != orcid {
		t.Errorf("orcid = %q, want %q", profile.ORCIDID, orcid)
	}
}
