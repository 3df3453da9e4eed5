package core

import (
	"errors"
	"fmt"
	"time"
)

// Role is a closed categorical tag used for grouping and theming agents.
// It carries no execution semantics: two agents with the same role behave
// however their system prompts say, not alike.
type Role string

const (
	// RoleResearcher gathers and synthesizes information.
	RoleResearcher Role = "researcher"
	// RolePlanner turns research into an actionable structure.
	RolePlanner Role = "planner"
	// RoleWriter produces long-form content.
	RoleWriter Role = "writer"
	// RoleReviewer assesses quality and correctness.
	RoleReviewer Role = "reviewer"
	// RoleArchitect designs solutions.
	RoleArchitect Role = "architect"
	// RoleCritic finds flaws in proposed solutions.
	RoleCritic Role = "critic"
)

// Roles returns all valid roles in declaration order. Useful for exhaustive
// UI grouping and validation.
func Roles() []Role {
	return []Role{RoleResearcher, RolePlanner, RoleWriter, RoleReviewer, RoleArchitect, RoleCritic}
}

// Valid reports whether r is a member of the closed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleResearcher, RolePlanner, RoleWriter, RoleReviewer, RoleArchitect, RoleCritic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string { return string(r) }

// ErrInvalidAgent indicates an agent record failed structural validation and
// was refused before reaching the registry.
var ErrInvalidAgent = errors.New("invalid agent")

// Agent is the identity and behavior template for one execution step.
// It has no logic of its own; the orchestrator hands its SystemPrompt to
// the model-call capability.
type Agent struct {
	// ID is the primary key, stable across sessions and immutable after
	// creation. Registering an agent with an existing ID replaces the prior
	// record.
	ID string `json:"id"`

	// Name and Description are display metadata with no uniqueness
	// constraint.
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Role groups the agent for filtering and theming.
	Role Role `json:"role"`

	// SystemPrompt is the behavioral template handed to the model call.
	// Non-empty is required for registration.
	SystemPrompt string `json:"systemPrompt"`

	// PreferredProvider optionally hints which backing model service should
	// service this agent's calls. Empty means "whatever the invoker's
	// default is".
	PreferredProvider string `json:"preferredProvider,omitempty"`

	// Version and CreatedAt are bookkeeping. CreatedAt is set once at
	// creation and never mutated afterwards.
	Version   string    `json:"version,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Validate checks the structural invariants required for registration.
// An agent without an id, name or system prompt is refused at the boundary.
func (a Agent) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidAgent)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidAgent)
	}
	if a.SystemPrompt == "" {
		return fmt.Errorf("%w: system prompt is required", ErrInvalidAgent)
	}
	if a.Role != "" && !a.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidAgent, a.Role)
	}
	return nil
}
