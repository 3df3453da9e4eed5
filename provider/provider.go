// Package provider wires concrete model services behind the core.Invoker
// port. The Mux routes an agent's preferred-provider hint to a registered
// invoker; the sub-packages adapt the OpenAI and Anthropic SDKs. The
// ScriptedInvoker is a deterministic fake for tests and examples.
package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/agentchain/core"
)

// Mux dispatches invocations to named providers. An agent whose
// PreferredProvider is empty (or unknown callers passing no hint) is served
// by the default provider.
type Mux struct {
	mu       sync.RWMutex
	invokers map[string]core.Invoker
	fallback string
}

// NewMux constructs an empty Mux. The first registered provider becomes
// the default until SetDefault says otherwise.
func NewMux() *Mux {
	return &Mux{invokers: make(map[string]core.Invoker)}
}

// Register adds an invoker under name, replacing any prior registration.
func (m *Mux) Register(name string, invoker core.Invoker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.invokers) == 0 && m.fallback == "" {
		m.fallback = name
	}
	m.invokers[name] = invoker
}

// SetDefault selects the provider used when a request carries no hint.
func (m *Mux) SetDefault(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = name
}

// Invoke implements core.Invoker by routing to the hinted provider.
// An unknown hint is an invocation error; the orchestrator turns it into a
// step failure like any other provider error.
func (m *Mux) Invoke(ctx context.Context, req core.InvokeRequest) (string, error) {
	name := req.Provider
	if name == "" {
		m.mu.RLock()
		name = m.fallback
		m.mu.RUnlock()
	}

	m.mu.RLock()
	invoker, ok := m.invokers[name]
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("provider: %q not configured", name)
	}
	return invoker.Invoke(ctx, req)
}
