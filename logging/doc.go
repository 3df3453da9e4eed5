// Package logging provides a minimal logging interface and adapters for
// AgentChain.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the registry and orchestrator use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - ChainLogger with contextual helpers for chain/run scoped output
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
