package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Version is set at build time:
//
//	go build -ldflags "-X github.com/BenWeng0419/gpt-ai-assistant/version.Version=4.9.0"
var Version = "dev"

var (
	ErrVersionMissing         = errors.New("manifest has no version")
	ErrVersionCheckURLMissing = errors.New("version check url is not configured")
)

// Provider reports the running version and the latest published one.
type Provider interface {
	GetVersion() string
	FetchVersion(ctx context.Context) (string, error)
}

// Checker reads the latest version from a published package manifest.
type Checker struct {
	client      *http.Client
	manifestURL string
}

// NewChecker returns a Checker. Deadlines come from the context passed to
// FetchVersion, the client has no timeout of its own.
func NewChecker(manifestURL string, client *http.Client) *Checker {
	if client == nil {
		client = http.DefaultClient
	}

	return &Checker{
		client:      client,
		manifestURL: manifestURL,
	}
}

type manifest struct {
	Version string `json:"version"`
}

func (c *Checker) GetVersion() string {
	return Version
}

func (c *Checker) FetchVersion(ctx context.Context) (string, error) {
	if c.manifestURL == "" {
		return "", ErrVersionCheckURLMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.manifestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create version request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to fetch version: unexpected status %d", resp.StatusCode)
	}

	var m manifest
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&m); err != nil {
		return "", fmt.Errorf("failed to parse version manifest: %w", err)
	}

	v := strings.TrimSpace(m.Version)
	if v == "" {
		return "", ErrVersionMissing
	}

	return v, nil
}
