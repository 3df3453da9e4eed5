// Package orchestrator executes one chain against one task, driving each
// step strictly in order, mapping prior outputs into later inputs and
// containing every per-step failure to that step.
//
// The execution contract is deliberately rigid: exactly one AgentOutput per
// attempted step, in chain order, regardless of outcome. An unresolved
// agent, a provider error or an empty response all become a failed output,
// never an early return. Runtime failures are data; only structural misuse
// (an empty chain) surfaces as an error.
//
// A single orchestrator handles any number of concurrent executions; it
// keeps no per-run state between calls. The model call is the only
// blocking operation per step.
package orchestrator
