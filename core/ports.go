package core

import (
	"context"
	"errors"
)

// InvokeRequest carries everything a model provider needs for one step's
// generation: the agent's behavioral template, the resolved step input, the
// caller's credentials and an optional provider routing hint.
type InvokeRequest struct {
	SystemPrompt string
	Input        string
	Credentials  string
	Provider     string
}

// Invoker is the external model-call capability consumed by the
// orchestrator. Implementations wrap a concrete provider SDK; the
// orchestrator converts any returned error into a step-local failure.
// Invoke is the single blocking operation per chain step.
type Invoker interface {
	Invoke(ctx context.Context, req InvokeRequest) (string, error)
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx context.Context, req InvokeRequest) (string, error)

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, req InvokeRequest) (string, error) {
	return f(ctx, req)
}

// ErrSnapshotNotFound is returned by SnapshotStore.Read when no document
// has been persisted yet. A fresh installation is expected to hit this.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists the registry's single JSON document. Each call
// opens, operates and releases the underlying handle; no open handle is
// held across calls. Implementations vary the backend (filesystem,
// embedded database, memory) without touching registry logic.
type SnapshotStore interface {
	// Read returns the persisted document, or ErrSnapshotNotFound when
	// nothing has been written yet.
	Read(ctx context.Context) ([]byte, error)

	// Write durably replaces the document with data.
	Write(ctx context.Context, data []byte) error
}

// Manifest is a fetchable preset document used for additive bootstrap and
// bulk import. Only agents whose ids are not yet present are taken.
type Manifest struct {
	Agents []Agent `json:"agents"`
}

// ManifestSource fetches a preset manifest from wherever it is bundled or
// hosted.
type ManifestSource interface {
	Fetch(ctx context.Context) (Manifest, error)
}
