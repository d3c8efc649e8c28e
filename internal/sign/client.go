// Copyright Science Live Hub, 2026. All rights reserved.

// Package sign wraps the external nanopub client used for signing and
// publishing. The key material never passes through this process; the
// package locates a client (local np binary, or the nanopub-java container
// image via docker/podman) and delegates to it.
package sign

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	binNP     = "np"
	binDocker = "docker"
	binPodman = "podman"

	// DefaultImage is the fallback client image when no np binary is on PATH.
	DefaultImage = "nanopub/nanopub-java"

	// SignedPrefix is the filename prefix the client gives signed documents.
	SignedPrefix = "signed."
)

// Client signs and publishes nanopublication documents through an external
// nanopub client.
type Client interface {
	// Name identifies the backing client ("np", "docker", "podman").
	Name() string

	// Sign signs one TriG document and returns the signed file path.
	Sign(path string) (string, error)

	// Publish signs and publishes one TriG document, returning the
	// published nanopub URI. testServer targets the test network.
	Publish(path string, testServer bool) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunOutput(name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunOutput(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

// localClient drives a np binary found on PATH.
type localClient struct {
	exec executor
}

func (c *localClient) Name() string { return binNP }

func (c *localClient) Sign(path string) (string, error) {
	if err := c.exec.RunSilent(binNP, "sign", path); err != nil {
		return "", fmt.Errorf("signing %s: %w", path, err)
	}
	return signedPath(path), nil
}

func (c *localClient) Publish(path string, testServer bool) (string, error) {
	args := []string{"publish", path}
	if testServer {
		args = append(args, "--test")
	}
	var out strings.Builder
	if err := c.exec.RunOutput(binNP, args, &out); err != nil {
		return "", fmt.Errorf("publishing %s: %w", path, err)
	}
	uri, err := parsePublishedURI(out.String())
	if err != nil {
		return "", fmt.Errorf("publishing %s: %w", path, err)
	}
	return uri, nil
}

// containerClient drives the client image through a container runtime. The
// document's directory is mounted read-write so the signed output lands
// next to the input.
type containerClient struct {
	bin   string
	image string
	exec  executor
}

func (c *containerClient) Name() string { return c.bin }

func (c *containerClient) runArgs(dir string, clientArgs ...string) []string {
	args := []string{"run", "--rm", "-v", dir + ":/work", "-w", "/work", c.image}
	return append(args, clientArgs...)
}

func (c *containerClient) Sign(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	dir, base := filepath.Split(abs)
	if err := c.exec.RunSilent(c.bin, c.runArgs(filepath.Clean(dir), "sign", base)...); err != nil {
		return "", fmt.Errorf("signing %s in %s container: %w", path, c.bin, err)
	}
	return signedPath(path), nil
}

func (c *containerClient) Publish(path string, testServer bool) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	dir, base := filepath.Split(abs)

	clientArgs := []string{"publish", base}
	if testServer {
		clientArgs = append(clientArgs, "--test")
	}
	var out strings.Builder
	if err := c.exec.RunOutput(c.bin, c.runArgs(filepath.Clean(dir), clientArgs...), &out); err != nil {
		return "", fmt.Errorf("publishing %s in %s container: %w", path, c.bin, err)
	}
	uri, err := parsePublishedURI(out.String())
	if err != nil {
		return "", fmt.Errorf("publishing %s: %w", path, err)
	}
	return uri, nil
}

func (c *containerClient) available() bool {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return false
	}
	return c.exec.RunSilent(c.bin, "info") == nil
}

// signedPath returns the path the client writes the signed document to:
// signed.<name> next to the input.
func signedPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, SignedPrefix+base)
}

// parsePublishedURI extracts the published nanopub URI from client output.
// The client prints the final URI on its own line; any http(s) token on the
// last matching line wins.
func parsePublishedURI(output string) (string, error) {
	uri := ""
	for _, field := range strings.Fields(output) {
		if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
			uri = field
		}
	}
	if uri == "" {
		return "", fmt.Errorf("no nanopub URI in client output: %q", strings.TrimSpace(output))
	}
	return uri, nil
}

var defaultExec executor = &osExecutor{}

// DetectClient finds a usable nanopub client: the np binary on PATH first,
// then the client image under docker or podman. An empty image selects
// DefaultImage.
func DetectClient(image string) (Client, error) {
	return detectClient(defaultExec, image)
}

func detectClient(exec executor, image string) (Client, error) {
	if _, err := exec.LookPath(binNP); err == nil {
		return &localClient{exec: exec}, nil
	}

	if image == "" {
		image = DefaultImage
	}
	for _, bin := range []string{binDocker, binPodman} {
		c := &containerClient{bin: bin, image: image, exec: exec}
		if c.available() {
			return c, nil
		}
	}

	return nil, fmt.Errorf(
		"no nanopub client available: install the %s binary or provide the %s image via %s or %s",
		binNP, image, binDocker, binPodman,
	)
}
