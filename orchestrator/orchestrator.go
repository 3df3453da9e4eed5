package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/agentchain/core"
	"github.com/hupe1980/agentchain/logging"
	"github.com/hupe1980/agentchain/preset"
)

var (
	// ErrEmptyChain indicates ExecuteChain was handed a chain without
	// steps. This is the one structural misuse the orchestrator refuses.
	ErrEmptyChain = errors.New("orchestrator: chain has no steps")

	// ErrUnknownChain indicates Run could not resolve the chain id.
	ErrUnknownChain = errors.New("orchestrator: unknown chain")
)

// unresolvedAgentName is the placeholder agent name used in a synthesized
// failure output when a step's agent id does not resolve.
const unresolvedAgentName = "Unknown Agent"

// Registry is the catalog surface the orchestrator consumes. Satisfied by
// *registry.Registry.
type Registry interface {
	GetAgent(id string) (core.Agent, bool)
	GetChain(id string) (core.Chain, bool)
	RegisterChain(ctx context.Context, chain core.Chain) error
}

// stepLogger is implemented by loggers that record per-step outcome
// details (logging.ChainLogger does).
type stepLogger interface {
	LogStep(agentID string, step int, dur time.Duration, success bool, err error)
}

// Options configures an Orchestrator.
type Options struct {
	Logger logging.Logger
}

// Orchestrator is the sequential execution engine. It holds no mutable
// per-run state; concurrent executions are independent and share only the
// registry.
type Orchestrator struct {
	registry Registry
	invoker  core.Invoker
	logger   logging.Logger
}

// New creates an Orchestrator resolving agents via reg and calling models
// via invoker.
func New(reg Registry, invoker core.Invoker, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{registry: reg, invoker: invoker, logger: opts.Logger}
}

// ExecuteChain runs every step of chain in order against the initial input
// and returns exactly one AgentOutput per step, in chain order. Failures
// (unresolved agent, provider error, empty response) are contained to their
// step: the output records them and execution continues; no content is
// merged into the run context for a failed step. The returned error is
// reserved for structural misuse (empty chain); per-step outcomes are data.
func (o *Orchestrator) ExecuteChain(ctx context.Context, chain core.Chain, input core.ChainInput, credentials string) ([]core.AgentOutput, error) {
	if len(chain.Steps) == 0 {
		return nil, ErrEmptyChain
	}

	runCtx := newRunContext(input)
	outputs := make([]core.AgentOutput, 0, len(chain.Steps))

	for i, step := range chain.Steps {
		outputs = append(outputs, o.executeStep(ctx, runCtx, i, step, credentials))
	}
	return outputs, nil
}

func (o *Orchestrator) executeStep(ctx context.Context, runCtx *runContext, index int, step core.ChainStep, credentials string) core.AgentOutput {
	agent, ok := o.registry.GetAgent(step.AgentID)
	if !ok {
		o.logStep(step.AgentID, index, 0, false, errors.New("agent not registered"))
		return core.AgentOutput{
			AgentID:   step.AgentID,
			AgentName: unresolvedAgentName,
			Success:   false,
			Error:     fmt.Sprintf("agent %q not found in registry", step.AgentID),
			Timestamp: time.Now(),
		}
	}

	stepInput := runCtx.resolveInput(index, step.InputMapping)

	start := time.Now()
	content, err := o.invoker.Invoke(ctx, core.InvokeRequest{
		SystemPrompt: agent.SystemPrompt,
		Input:        stepInput,
		Credentials:  credentials,
		Provider:     agent.PreferredProvider,
	})
	dur := time.Since(start)

	if err == nil && content == "" {
		err = errors.New("provider returned an empty response")
	}

	if err != nil {
		o.logStep(agent.ID, index, dur, false, err)
		return core.AgentOutput{
			AgentID:   agent.ID,
			AgentName: agent.Name,
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now(),
		}
	}

	runCtx.merge(agent.ID, content)
	o.logStep(agent.ID, index, dur, true, nil)
	return core.AgentOutput{
		AgentID:   agent.ID,
		AgentName: agent.Name,
		Content:   content,
		Success:   true,
		Timestamp: time.Now(),
	}
}

func (o *Orchestrator) logStep(agentID string, index int, dur time.Duration, success bool, err error) {
	if sl, ok := o.logger.(stepLogger); ok {
		sl.LogStep(agentID, index, dur, success, err)
		return
	}
	if success {
		o.logger.Debug("step completed", "agent_id", agentID, "step", index, "duration", dur)
		return
	}
	o.logger.Warn("step failed", "agent_id", agentID, "step", index, "error", err)
}

// RunResult is the envelope for one chain execution: the full ordered
// transcript plus identity and timing metadata.
type RunResult struct {
	RunID     string             `json:"runId"`
	ChainID   string             `json:"chainId"`
	ChainName string             `json:"chainName"`
	Outputs   []core.AgentOutput `json:"executions"`
	Duration  time.Duration      `json:"totalDuration"`
}

// Succeeded reports whether every step of the run succeeded.
func (r *RunResult) Succeeded() bool {
	for _, out := range r.Outputs {
		if !out.Success {
			return false
		}
	}
	return true
}

// Run resolves a chain by id and executes it, wrapping the transcript in a
// RunResult with a generated run id and the total wall-clock duration.
func (o *Orchestrator) Run(ctx context.Context, chainID string, input core.ChainInput, credentials string) (*RunResult, error) {
	chain, ok := o.registry.GetChain(chainID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chainID)
	}

	start := time.Now()
	outputs, err := o.ExecuteChain(ctx, chain, input, credentials)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		RunID:     uuid.NewString(),
		ChainID:   chain.ID,
		ChainName: chain.Name,
		Outputs:   outputs,
		Duration:  time.Since(start),
	}, nil
}

// InitializeCommonChains registers the built-in chain definitions
// (content creation pipeline, research with review, design debate) into the
// registry if they are not already present. Idempotent and additive-only,
// mirroring preset-agent bootstrap semantics.
func (o *Orchestrator) InitializeCommonChains(ctx context.Context) error {
	for _, c := range preset.Chains() {
		if _, exists := o.registry.GetChain(c.ID); exists {
			continue
		}
		if err := o.registry.RegisterChain(ctx, c); err != nil {
			return fmt.Errorf("orchestrator: register common chain %s: %w", c.ID, err)
		}
	}
	return nil
}
