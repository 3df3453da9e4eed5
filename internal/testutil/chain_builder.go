package testutil

import (
	"github.com/hupe1980/agentchain/core"
)

// ChainBuilder helps construct chains with fluent chaining for tests.
// Example:
//
//	chain := NewChainBuilder("pipeline-v1").Step("researcher-v1").Step("writer-v1").Build()
type ChainBuilder struct {
	chain core.Chain
}

// NewChainBuilder creates a new builder for a chain with the given id.
// The name is pre-filled; use chainable methods then call Build.
func NewChainBuilder(id string) *ChainBuilder {
	return &ChainBuilder{chain: core.Chain{
		ID:   id,
		Name: "Chain " + id,
	}}
}

// Name sets the display name (chainable).
func (b *ChainBuilder) Name(name string) *ChainBuilder {
	b.chain.Name = name
	return b
}

// Description sets the description (chainable).
func (b *ChainBuilder) Description(desc string) *ChainBuilder {
	b.chain.Description = desc
	return b
}

// Step appends a step referencing the given agent id (chainable).
func (b *ChainBuilder) Step(agentID string) *ChainBuilder {
	b.chain.Steps = append(b.chain.Steps, core.ChainStep{AgentID: agentID})
	return b
}

// MappedStep appends a step with an explicit input mapping (chainable).
func (b *ChainBuilder) MappedStep(agentID string, mapping map[string]string) *ChainBuilder {
	b.chain.Steps = append(b.chain.Steps, core.ChainStep{AgentID: agentID, InputMapping: mapping})
	return b
}

// Build returns the assembled chain.
func (b *ChainBuilder) Build() core.Chain {
	return b.chain
}
