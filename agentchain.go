// Package agentchain provides a high-level façade over the agent registry
// and the chain orchestrator, enabling rapid construction of sequential
// multi-agent pipelines. Most applications interact with this package by:
//  1. Creating an AgentChain via New() (optionally overriding the snapshot
//     store, the model invoker, the preset manifest source or the logger)
//  2. Calling Initialize() to load presets, the persisted snapshot and any
//     configured manifest
//  3. Registering additional agents and chains, then executing chains with
//     Run()
//
// The façade delegates catalog management to registry.Registry and execution
// to orchestrator.Orchestrator while keeping setup and usage ergonomics
// concise. All defaults are safe for local development and testing;
// production deployments typically supply a durable snapshot store, real
// provider invokers and a structured logger.
package agentchain

import (
	"context"

	"github.com/hupe1980/agentchain/core"
	"github.com/hupe1980/agentchain/debate"
	"github.com/hupe1980/agentchain/logging"
	"github.com/hupe1980/agentchain/orchestrator"
	"github.com/hupe1980/agentchain/provider"
	"github.com/hupe1980/agentchain/registry"
	"github.com/hupe1980/agentchain/storage"
)

// Options configures the AgentChain instance.
type Options struct {
	// Store persists the registry snapshot across restarts. Defaults to an
	// in-memory store.
	Store core.SnapshotStore

	// Invoker calls the backing model providers. Defaults to a provider.Mux
	// with no providers registered; supply one before executing chains.
	Invoker core.Invoker

	// Manifest optionally supplies a preset manifest merged during
	// Initialize and by ImportPresets.
	Manifest core.ManifestSource

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// AgentChain is the high-level façade aggregating the registry and the
// orchestrator.
type AgentChain struct {
	opts         Options
	registry     *registry.Registry
	orchestrator *orchestrator.Orchestrator
}

// New creates a new AgentChain instance with optional overrides. An unset
// store is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *AgentChain {
	opts := Options{
		Store:   storage.NewInMemory(),
		Invoker: provider.NewMux(),
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	reg := registry.New(opts.Store, func(o *registry.Options) {
		o.Logger = opts.Logger
		o.Manifest = opts.Manifest
	})

	orch := orchestrator.New(reg, opts.Invoker, func(o *orchestrator.Options) {
		o.Logger = opts.Logger
	})

	return &AgentChain{opts: opts, registry: reg, orchestrator: orch}
}

// Initialize loads presets, the persisted snapshot and any configured
// manifest, and registers the common preset chains. Safe to call more than
// once.
func (c *AgentChain) Initialize(ctx context.Context) error {
	c.registry.Initialize(ctx)
	return c.orchestrator.InitializeCommonChains(ctx)
}

// RegisterAgent adds or replaces an agent in the catalog.
func (c *AgentChain) RegisterAgent(ctx context.Context, agent core.Agent) error {
	return c.registry.RegisterAgent(ctx, agent)
}

// RegisterChain adds or replaces a chain in the catalog.
func (c *AgentChain) RegisterChain(ctx context.Context, chain core.Chain) error {
	return c.registry.RegisterChain(ctx, chain)
}

// Run executes the chain with the given id and returns its transcript.
func (c *AgentChain) Run(ctx context.Context, chainID string, input core.ChainInput, credentials string) (*orchestrator.RunResult, error) {
	return c.orchestrator.Run(ctx, chainID, input, credentials)
}

// ExecuteChain runs an ad-hoc chain without registering it first.
func (c *AgentChain) ExecuteChain(ctx context.Context, chain core.Chain, input core.ChainInput, credentials string) ([]core.AgentOutput, error) {
	return c.orchestrator.ExecuteChain(ctx, chain, input, credentials)
}

// Debate runs an architect/critic debate on the given topic using the
// configured invoker.
func (c *AgentChain) Debate(ctx context.Context, topic, credentials string, optFns ...func(o *debate.Options)) (*debate.Transcript, error) {
	return debate.Run(ctx, c.opts.Invoker, topic, credentials, optFns...)
}

// Registry exposes the underlying catalog for direct management
// (removal, role queries, custom chains, profile export).
func (c *AgentChain) Registry() *registry.Registry { return c.registry }

// Orchestrator exposes the underlying execution engine.
func (c *AgentChain) Orchestrator() *orchestrator.Orchestrator { return c.orchestrator }
