// Copyright Science Live Hub, 2026. All rights reserved.

// Package registry queries nanopublication network endpoints to check
// whether a published nanopub resolves. It never writes to the network;
// publication itself is the external client's job.
package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ScienceLiveHub/nanopub-notebooks/internal/httputil"
	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

const (
	// ProductionBase resolves nanopub URIs on the production network.
	ProductionBase = "https://w3id.org/np/"

	// TestBase resolves nanopub URIs on the test network.
	TestBase = "https://np.test.knowledgepixels.com/"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "nanopub-notebooks/0.1"
)

// Client resolves nanopublication URIs against one network endpoint.
type Client struct {
	base       string
	hc         *http.Client
	userAgent  string
	apiToken   string
	maxRetries int
}

// NewClient builds a registry client for the test or production network.
func NewClient(testServer bool, cfg types.RegistryConfig) *Client {
	base := ProductionBase
	if testServer {
		base = TestBase
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		base:       base,
		hc:         &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		apiToken:   cfg.APIToken,
		maxRetries: cfg.MaxRetries,
	}
}

// Base returns the endpoint base URL the client targets.
func (c *Client) Base() string { return c.base }

// resolveURL maps a nanopub URI or bare artifact code onto the client's
// endpoint. Full production URIs are re-rooted so the same code can be
// checked on either network.
func (c *Client) resolveURL(uri string) string {
	code := uri
	for _, prefix := range []string{ProductionBase, TestBase} {
		if strings.HasPrefix(uri, prefix) {
			code = strings.TrimPrefix(uri, prefix)
			break
		}
	}
	return c.base + code
}

// Resolve checks whether a nanopublication is retrievable on the network.
// It returns true when the registry serves the document, false on a clean
// 404, and an error for anything else.
func (c *Client) Resolve(ctx context.Context, uri string) (bool, error) {
	target := c.resolveURL(uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/trig")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := httputil.DoWithRetry(ctx, c.hc, req, c.maxRetries)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("registry returned HTTP %d for %s", resp.StatusCode, target)
	}
}
