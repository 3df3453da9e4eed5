package testutil

import (
	"github.com/hupe1980/agentchain/core"
)

// AgentBuilder helps construct agents with fluent chaining for tests.
// Example:
//
//	agent := NewAgentBuilder("researcher-v1").Name("Researcher").Role(core.RoleResearcher).Build()
type AgentBuilder struct {
	agent core.Agent
}

// NewAgentBuilder creates a new builder for an agent with the given id.
// Name and SystemPrompt are pre-filled so Build yields a valid agent;
// use chainable methods to override, then call Build.
func NewAgentBuilder(id string) *AgentBuilder {
	return &AgentBuilder{agent: core.Agent{
		ID:           id,
		Name:         "Agent " + id,
		SystemPrompt: "You are a helpful assistant.",
	}}
}

// Name sets the display name (chainable).
func (b *AgentBuilder) Name(name string) *AgentBuilder {
	b.agent.Name = name
	return b
}

// Description sets the description (chainable).
func (b *AgentBuilder) Description(desc string) *AgentBuilder {
	b.agent.Description = desc
	return b
}

// Role sets the role (chainable).
func (b *AgentBuilder) Role(role core.Role) *AgentBuilder {
	b.agent.Role = role
	return b
}

// SystemPrompt sets the system prompt (chainable).
func (b *AgentBuilder) SystemPrompt(prompt string) *AgentBuilder {
	b.agent.SystemPrompt = prompt
	return b
}

// Provider sets the preferred provider hint (chainable).
func (b *AgentBuilder) Provider(provider string) *AgentBuilder {
	b.agent.PreferredProvider = provider
	return b
}

// Build returns the assembled agent.
func (b *AgentBuilder) Build() core.Agent {
	return b.agent
}
