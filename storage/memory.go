package storage

import (
	"context"
	"sync"

	"github.com/hupe1980/agentchain/core"
)

// InMemory is a volatile SnapshotStore keeping the document in a process
// local buffer. It is safe for concurrent access and best suited for tests
// or ephemeral demo setups. The stored document is copied on both read and
// write to prevent external mutation of internal state.
type InMemory struct {
	mu   sync.RWMutex
	data []byte
}

// NewInMemory constructs an empty in-memory snapshot store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Read implements core.SnapshotStore.
func (s *InMemory) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, core.ErrSnapshotNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Write implements core.SnapshotStore.
func (s *InMemory) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}
