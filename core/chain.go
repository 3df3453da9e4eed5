package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidChain indicates a chain record failed structural validation.
var ErrInvalidChain = errors.New("invalid chain")

// ChainStep references one agent within a chain plus the per-step input
// configuration. Unresolved AgentIDs are a runtime failure at execution
// time, not a structural one: chains may be created before their agents,
// or an agent may be deleted later.
type ChainStep struct {
	// AgentID references the agent executing this step.
	AgentID string `json:"agentId"`

	// InputMapping selects entries from the accumulated run context and
	// labels them when composing this step's input. Keys are context keys
	// (prior agent ids, or "task" for the chain's initial input); values
	// are the labels under which the selected content is presented. A nil
	// or empty mapping means "default flow": the first step receives the
	// initial input verbatim, later steps the preceding step's output
	// composed with the original task.
	InputMapping map[string]string `json:"inputMapping,omitempty"`

	// Config carries free-form per-step settings (temperature overrides,
	// formatting hints). The orchestrator passes it through untouched.
	Config map[string]any `json:"config,omitempty"`
}

// Chain is an ordered list of agent references defining an execution
// pipeline. Unlike the registry's catalog order, the order of Steps is
// semantically load-bearing: it is the execution order.
type Chain struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Steps is serialized as "agents" to match the persisted document
	// layout.
	Steps []ChainStep `json:"agents"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Validate checks the structural invariants required for registration.
// Step agent ids are deliberately not resolved here.
func (c Chain) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidChain)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidChain)
	}
	for i, s := range c.Steps {
		if s.AgentID == "" {
			return fmt.Errorf("%w: step %d has no agent id", ErrInvalidChain, i)
		}
	}
	return nil
}
