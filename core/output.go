package core

import "time"

// TaskKey is the context key under which a chain's initial task text is
// available to step input mappings.
const TaskKey = "task"

// ChainInput seeds a chain execution. Task is the free-form task text; the
// optional Context entries are merged into the run context before the first
// step so mappings can reference caller-supplied material.
type ChainInput struct {
	Task    string            `json:"task"`
	Context map[string]string `json:"context,omitempty"`
}

// AgentOutput is the transcript record for one attempted chain step. It is
// a transient execution artifact owned by the caller, never persisted as
// entity state. AgentID and AgentName are denormalized snapshots of the
// agent at execution time so a later rename or deletion does not corrupt
// historical transcripts.
type AgentOutput struct {
	AgentID   string    `json:"agentId"`
	AgentName string    `json:"agentName"`
	Content   string    `json:"content"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
