package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hupe1980/agentchain/core"
)

// HTTPManifestSource fetches a preset manifest (`{"agents": [...]}`) from a
// URL. It implements core.ManifestSource.
type HTTPManifestSource struct {
	url    string
	client *http.Client
}

// HTTPManifestOptions configures an HTTPManifestSource.
type HTTPManifestOptions struct {
	Client *http.Client
}

// NewHTTPManifestSource creates a manifest source fetching from url.
func NewHTTPManifestSource(url string, optFns ...func(o *HTTPManifestOptions)) *HTTPManifestSource {
	opts := HTTPManifestOptions{Client: &http.Client{Timeout: 15 * time.Second}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &HTTPManifestSource{url: url, client: opts.Client}
}

// Fetch implements core.ManifestSource.
func (s *HTTPManifestSource) Fetch(ctx context.Context) (core.Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return core.Manifest{}, fmt.Errorf("preset: build manifest request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return core.Manifest{}, fmt.Errorf("preset: fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.Manifest{}, fmt.Errorf("preset: fetch manifest: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Manifest{}, fmt.Errorf("preset: read manifest body: %w", err)
	}

	var manifest core.Manifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return core.Manifest{}, fmt.Errorf("preset: decode manifest: %w", err)
	}
	return manifest, nil
}

// StaticManifestSource serves a fixed manifest from memory. Useful for
// bundled presets and tests.
type StaticManifestSource struct {
	manifest core.Manifest
}

// NewStaticManifestSource wraps agents into a static manifest source.
func NewStaticManifestSource(agents ...core.Agent) *StaticManifestSource {
	return &StaticManifestSource{manifest: core.Manifest{Agents: agents}}
}

// Fetch implements core.ManifestSource.
func (s *StaticManifestSource) Fetch(_ context.Context) (core.Manifest, error) {
	return s.manifest, nil
}
