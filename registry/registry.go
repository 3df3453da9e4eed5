package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/agentchain/core"
	"github.com/hupe1980/agentchain/internal/collection"
	"github.com/hupe1980/agentchain/logging"
	"github.com/hupe1980/agentchain/preset"
	"github.com/hupe1980/agentchain/storage"
)

// ErrNoManifest is returned by ImportPresets when no manifest source was
// configured.
var ErrNoManifest = errors.New("registry: no manifest source configured")

// Options configures a Registry instance.
type Options struct {
	// Logger receives bootstrap and persistence diagnostics. Defaults to
	// NoOp.
	Logger logging.Logger

	// PresetAgents are the built-in defaults merged add-if-absent during
	// Initialize and restored by ResetToDefaults. Defaults to
	// preset.Agents().
	PresetAgents []core.Agent

	// Manifest optionally supplies a bundled/remote preset manifest merged
	// add-if-absent during Initialize and by ImportPresets. Nil disables
	// both.
	Manifest core.ManifestSource
}

// Registry is the persistent catalog of agents and chains. Reads are
// concurrent; writes serialize "mutate map, then write whole snapshot"
// behind one mutex so near-simultaneous registrations cannot interleave a
// partial snapshot.
type Registry struct {
	mu     sync.RWMutex
	agents *collection.OrderedMap[core.Agent]
	chains *collection.OrderedMap[core.Chain]

	store    core.SnapshotStore
	logger   logging.Logger
	presets  []core.Agent
	manifest core.ManifestSource

	initialized bool
}

// New creates a Registry backed by store. A nil store falls back to a
// volatile in-memory store, which is handy for tests and demos.
func New(store core.SnapshotStore, optFns ...func(o *Options)) *Registry {
	opts := Options{
		Logger:       logging.NoOpLogger{},
		PresetAgents: preset.Agents(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if store == nil {
		store = storage.NewInMemory()
	}

	return &Registry{
		agents:   collection.NewOrderedMap[core.Agent](),
		chains:   collection.NewOrderedMap[core.Chain](),
		store:    store,
		logger:   opts.Logger,
		presets:  opts.PresetAgents,
		manifest: opts.Manifest,
	}
}

// Initialize bootstraps the catalog. It merges three sources in order:
// built-in presets (add-if-absent), the persisted snapshot (overwrite), and
// the preset manifest (add-if-absent). Storage or network errors are logged
// and swallowed; whatever loaded successfully becomes the working state.
// Initialize never fails the caller and is a no-op once it has run.
func (r *Registry) Initialize(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return
	}

	r.loadPresetsLocked()
	r.loadSnapshotLocked(ctx)
	r.mergeManifestLocked(ctx)

	r.initialized = true
	r.logger.Info("registry initialized", "agents", r.agents.Len(), "chains", r.chains.Len())
}

func (r *Registry) loadPresetsLocked() {
	for _, a := range r.presets {
		if _, exists := r.agents.Get(a.ID); exists {
			continue
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now()
		}
		r.agents.Set(a.ID, a)
	}
}

func (r *Registry) loadSnapshotLocked(ctx context.Context) {
	data, err := r.store.Read(ctx)
	if err != nil {
		if errors.Is(err, core.ErrSnapshotNotFound) {
			r.logger.Debug("no persisted snapshot; starting from defaults")
		} else {
			r.logger.Warn("snapshot load failed", "error", err)
		}
		return
	}

	doc, err := decodeSnapshot(data)
	if err != nil {
		r.logger.Warn("snapshot malformed; keeping defaults", "error", err)
		return
	}

	// Persisted records overwrite same-id defaults.
	for _, a := range doc.Agents {
		r.agents.Set(a.ID, a)
	}
	for _, c := range doc.Chains {
		r.chains.Set(c.ID, c)
	}
}

func (r *Registry) mergeManifestLocked(ctx context.Context) {
	if r.manifest == nil {
		return
	}
	manifest, err := r.manifest.Fetch(ctx)
	if err != nil {
		r.logger.Warn("preset manifest unavailable", "error", err)
		return
	}
	imported, skipped := r.importAgentsLocked(manifest.Agents)
	r.logger.Debug("preset manifest merged", "imported", imported, "skipped", skipped)
}

// importAgentsLocked adds agents whose ids are not yet present. It never
// overwrites and silently drops structurally invalid records.
func (r *Registry) importAgentsLocked(agents []core.Agent) (imported, skipped int) {
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			r.logger.Warn("skipping invalid preset agent", "id", a.ID, "error", err)
			skipped++
			continue
		}
		if _, exists := r.agents.Get(a.ID); exists {
			skipped++
			continue
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now()
		}
		r.agents.Set(a.ID, a)
		imported++
	}
	return imported, skipped
}

// persistLocked writes the whole current snapshot. Failures are logged and
// swallowed: the in-memory state stays authoritative and the disk state
// stays stale until the next successful persist.
func (r *Registry) persistLocked(ctx context.Context) {
	data, err := encodeSnapshot(r.agents.Values(), r.chains.Values())
	if err != nil {
		r.logger.Error("snapshot encode failed", "error", err)
		return
	}
	if err := r.store.Write(ctx, data); err != nil {
		r.logger.Warn("snapshot persist failed; in-memory state unaffected", "error", err)
	}
}

// RegisterAgent validates and upserts an agent by id, then persists the
// full snapshot. Registering an existing id replaces the prior record but
// keeps its original CreatedAt.
func (r *Registry) RegisterAgent(ctx context.Context, agent core.Agent) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prior, exists := r.agents.Get(agent.ID); exists {
		agent.CreatedAt = prior.CreatedAt
	} else if agent.CreatedAt.IsZero() {
		agent.CreatedAt = time.Now()
	}

	r.agents.Set(agent.ID, agent)
	r.persistLocked(ctx)
	return nil
}

// RegisterChain validates and upserts a chain by id, then persists the full
// snapshot.
func (r *Registry) RegisterChain(ctx context.Context, chain core.Chain) error {
	if err := chain.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prior, exists := r.chains.Get(chain.ID); exists {
		chain.CreatedAt = prior.CreatedAt
	} else if chain.CreatedAt.IsZero() {
		chain.CreatedAt = time.Now()
	}

	r.chains.Set(chain.ID, chain)
	r.persistLocked(ctx)
	return nil
}

// RemoveAgent deletes an agent by id and reports whether it existed. The
// snapshot is persisted only when something was actually removed.
func (r *Registry) RemoveAgent(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.agents.Delete(id) {
		return false
	}
	r.persistLocked(ctx)
	return true
}

// RemoveChain deletes a chain by id and reports whether it existed.
func (r *Registry) RemoveChain(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.chains.Delete(id) {
		return false
	}
	r.persistLocked(ctx)
	return true
}

// GetAgent returns the agent registered under id. Missing ids are reported
// via the boolean, never as an error.
func (r *Registry) GetAgent(id string) (core.Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.agents.Get(id)
}

// GetChain returns the chain registered under id.
func (r *Registry) GetChain(id string) (core.Chain, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chains.Get(id)
}

// AllAgents returns every agent in insertion order. Upserts keep the
// original position; order carries no execution semantics here, unlike
// chain-step order.
func (r *Registry) AllAgents() []core.Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.agents.Values()
}

// AllChains returns every chain in insertion order.
func (r *Registry) AllChains() []core.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chains.Values()
}

// AgentsByRole filters the catalog by categorical role tag.
func (r *Registry) AgentsByRole(role core.Role) []core.Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []core.Agent
	for _, a := range r.agents.Values() {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out
}

// CustomChainOptions configures CreateCustomChain.
type CustomChainOptions struct {
	// Description is the chain's display description.
	Description string
	// StepConfig is attached to every step of the chain.
	StepConfig map[string]any
}

// CreateCustomChain builds a chain with a generated id from an ordered list
// of agent ids, registers it and returns it. Steps carry no explicit input
// mapping: the first step draws from the chain's initial input, later steps
// default to the immediately preceding step's output.
func (r *Registry) CreateCustomChain(ctx context.Context, name string, agentIDs []string, optFns ...func(o *CustomChainOptions)) (core.Chain, error) {
	opts := CustomChainOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	steps := make([]core.ChainStep, 0, len(agentIDs))
	for _, id := range agentIDs {
		steps = append(steps, core.ChainStep{AgentID: id, Config: opts.StepConfig})
	}

	chain := core.Chain{
		ID:          fmt.Sprintf("chain-%s", uuid.NewString()),
		Name:        name,
		Description: opts.Description,
		Steps:       steps,
		CreatedAt:   time.Now(),
	}

	if err := r.RegisterChain(ctx, chain); err != nil {
		return core.Chain{}, err
	}
	return chain, nil
}

// ResetToDefaults clears the whole catalog, reloads only the built-in
// preset agents and persists. Destructive; nothing ever triggers it
// automatically.
func (r *Registry) ResetToDefaults(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.agents.Clear()
	r.chains.Clear()
	r.loadPresetsLocked()
	r.persistLocked(ctx)

	r.logger.Info("registry reset to defaults", "agents", r.agents.Len())
}

// ImportResult reports the outcome of a bulk preset import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ImportPresets fetches the configured manifest and adds only agents whose
// ids are not yet present. Existing records are never overwritten.
func (r *Registry) ImportPresets(ctx context.Context) (ImportResult, error) {
	if r.manifest == nil {
		return ImportResult{}, ErrNoManifest
	}

	manifest, err := r.manifest.Fetch(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("registry: import presets: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	imported, skipped := r.importAgentsLocked(manifest.Agents)
	if imported > 0 {
		r.persistLocked(ctx)
	}
	return ImportResult{Imported: imported, Skipped: skipped}, nil
}

// Restore upserts all given agents and chains in one pass with a single
// persist at the end. Used by profile import to rebuild a catalog from a
// portable document.
func (r *Registry) Restore(ctx context.Context, agents []core.Agent, chains []core.Chain) error {
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, c := range chains {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range agents {
		r.agents.Set(a.ID, a)
	}
	for _, c := range chains {
		r.chains.Set(c.ID, c)
	}
	r.persistLocked(ctx)
	return nil
}
