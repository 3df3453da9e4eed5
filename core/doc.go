// Package core defines the domain model and port contracts shared across
// AgentChain packages: agents, chains, per-step execution outputs and the
// interfaces for the model-call capability, snapshot persistence and preset
// manifests. Keeping the contracts here prevents higher level packages
// (registry, orchestrator, providers) from depending on each other's
// concrete implementations.
package core
