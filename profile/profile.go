// Package profile serializes a registry's catalog plus credential
// references into a portable document and restores it elsewhere. The
// document is a thin envelope over the registry's own record shapes;
// restoration delegates entirely to the registry.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/agentchain/core"
)

// ErrMalformedDocument indicates the imported payload is missing required
// top-level keys. This is a programmer/user-facing structural violation and
// is the one condition import raises instead of tolerating.
var ErrMalformedDocument = errors.New("profile: malformed document")

// Version is the current document format version.
const Version = 1

// Document is the portable profile format. ProviderKeys holds credential
// references (provider name to key alias or ciphertext), never raw secrets
// managed by this package.
type Document struct {
	Version      int               `json:"version"`
	ExportedAt   time.Time         `json:"exportedAt"`
	Agents       []core.Agent      `json:"agents"`
	Chains       []core.Chain      `json:"chains"`
	ProviderKeys map[string]string `json:"providerKeys,omitempty"`
}

// Catalog is the registry surface profile needs. Satisfied by
// *registry.Registry.
type Catalog interface {
	AllAgents() []core.Agent
	AllChains() []core.Chain
	Restore(ctx context.Context, agents []core.Agent, chains []core.Chain) error
}

// Export captures the full catalog into a document stamped with the
// current time.
func Export(catalog Catalog, providerKeys map[string]string) *Document {
	return &Document{
		Version:      Version,
		ExportedAt:   time.Now(),
		Agents:       catalog.AllAgents(),
		Chains:       catalog.AllChains(),
		ProviderKeys: providerKeys,
	}
}

// Marshal renders the document as pretty-printed JSON.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("profile: encode document: %w", err)
	}
	return data, nil
}

// Parse decodes and structurally validates a portable document. Both the
// "agents" and "chains" keys must be present (empty arrays are fine).
func Parse(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for _, key := range []string{"agents", "chains"} {
		if _, ok := probe[key]; !ok {
			return nil, fmt.Errorf("%w: missing top-level key %q", ErrMalformedDocument, key)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Import restores the document's agents and chains into the catalog via a
// single upsert pass.
func Import(ctx context.Context, catalog Catalog, doc *Document) error {
	if doc == nil {
		return ErrMalformedDocument
	}
	return catalog.Restore(ctx, doc.Agents, doc.Chains)
}
