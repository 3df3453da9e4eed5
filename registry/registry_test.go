package registry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hupe1980/agentchain/core"
	"github.com/hupe1980/agentchain/preset"
	"github.com/hupe1980/agentchain/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps an in-memory store and records writes.
type countingStore struct {
	mu     sync.Mutex
	inner  *storage.InMemory
	writes int
}

func newCountingStore() *countingStore {
	return &countingStore{inner: storage.NewInMemory()}
}

func (s *countingStore) Read(ctx context.Context) ([]byte, error) { return s.inner.Read(ctx) }

func (s *countingStore) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return s.inner.Write(ctx, data)
}

func (s *countingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// failingStore errors on every operation.
type failingStore struct{}

func (failingStore) Read(context.Context) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStore) Write(context.Context, []byte) error  { return errors.New("disk on fire") }

func testAgent(id, name string) core.Agent {
	return core.Agent{ID: id, Name: name, Role: core.RoleResearcher, SystemPrompt: "prompt for " + name}
}

func TestRegisterAgent_UpsertNotAppend(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	require.NoError(t, r.RegisterAgent(ctx, testAgent("x", "First")))
	require.NoError(t, r.RegisterAgent(ctx, testAgent("x", "Second")))

	var matches []core.Agent
	for _, a := range r.AllAgents() {
		if a.ID == "x" {
			matches = append(matches, a)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, "Second", matches[0].Name)
}

func TestRegisterAgent_PreservesCreatedAt(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	require.NoError(t, r.RegisterAgent(ctx, testAgent("x", "First")))
	first, ok := r.GetAgent("x")
	require.True(t, ok)

	require.NoError(t, r.RegisterAgent(ctx, testAgent("x", "Second")))
	second, ok := r.GetAgent("x")
	require.True(t, ok)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestRegisterAgent_RejectsInvalid(t *testing.T) {
	store := newCountingStore()
	r := New(store)

	err := r.RegisterAgent(context.Background(), core.Agent{ID: "x", Name: "No Prompt"})

	assert.ErrorIs(t, err, core.ErrInvalidAgent)
	assert.Empty(t, r.AllAgents())
	assert.Zero(t, store.writeCount(), "invalid registration must not persist")
}

func TestRegisterAgent_PersistsSnapshot(t *testing.T) {
	store := newCountingStore()
	r := New(store)
	ctx := context.Background()

	require.NoError(t, r.RegisterAgent(ctx, testAgent("x", "X")))
	assert.Equal(t, 1, store.writeCount())

	data, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"agents"`)
	assert.Contains(t, string(data), `"chains"`)
	assert.Contains(t, string(data), `"x"`)
}

func TestRegisterAgent_PersistFailureIsSwallowed(t *testing.T) {
	r := New(failingStore{})

	err := r.RegisterAgent(context.Background(), testAgent("x", "X"))

	assert.NoError(t, err, "persistence is best-effort; mutation must succeed")
	_, ok := r.GetAgent("x")
	assert.True(t, ok, "in-memory state must stay correct after failed persist")
}

func TestRemoveAgent(t *testing.T) {
	store := newCountingStore()
	r := New(store)
	ctx := context.Background()

	require.NoError(t, r.RegisterAgent(ctx, testAgent("x", "X")))
	writesBefore := store.writeCount()

	assert.True(t, r.RemoveAgent(ctx, "x"))
	assert.Equal(t, writesBefore+1, store.writeCount())

	assert.False(t, r.RemoveAgent(ctx, "x"))
	assert.Equal(t, writesBefore+1, store.writeCount(), "removing a missing id must not persist")
}

func TestGetAgent_MissingIsNotAnError(t *testing.T) {
	r := New(nil)
	agent, ok := r.GetAgent("nope")
	assert.False(t, ok)
	assert.Zero(t, agent)
}

func TestAllAgents_InsertionOrderSurvivesUpsert(t *testing.T) {
	r := New(nil, func(o *Options) { o.PresetAgents = nil })
	ctx := context.Background()

	require.NoError(t, r.RegisterAgent(ctx, testAgent("a", "A")))
	require.NoError(t, r.RegisterAgent(ctx, testAgent("b", "B")))
	require.NoError(t, r.RegisterAgent(ctx, testAgent("c", "C")))
	require.NoError(t, r.RegisterAgent(ctx, testAgent("b", "B2")))

	ids := make([]string, 0, 3)
	for _, a := range r.AllAgents() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestAgentsByRole(t *testing.T) {
	r := New(nil, func(o *Options) { o.PresetAgents = nil })
	ctx := context.Background()

	writer := testAgent("w", "W")
	writer.Role = core.RoleWriter
	require.NoError(t, r.RegisterAgent(ctx, testAgent("r1", "R1")))
	require.NoError(t, r.RegisterAgent(ctx, writer))
	require.NoError(t, r.RegisterAgent(ctx, testAgent("r2", "R2")))

	researchers := r.AgentsByRole(core.RoleResearcher)
	require.Len(t, researchers, 2)
	assert.Equal(t, "r1", researchers[0].ID)
	assert.Equal(t, "r2", researchers[1].ID)

	assert.Empty(t, r.AgentsByRole(core.RoleCritic))
}

func TestInitialize_LoadsPresets(t *testing.T) {
	r := New(nil)
	r.Initialize(context.Background())

	assert.Len(t, r.AllAgents(), len(preset.Agents()))
	_, ok := r.GetAgent(preset.ResearcherID)
	assert.True(t, ok)
}

func TestInitialize_PersistedOverwritesPresets(t *testing.T) {
	store := storage.NewInMemory()
	ctx := context.Background()

	// Persist a customized researcher under the preset id.
	custom := testAgent(preset.ResearcherID, "My Researcher")
	data, err := encodeSnapshot([]core.Agent{custom}, nil)
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, data))

	r := New(store)
	r.Initialize(ctx)

	got, ok := r.GetAgent(preset.ResearcherID)
	require.True(t, ok)
	assert.Equal(t, "My Researcher", got.Name, "persisted record must overwrite same-id default")
}

func TestInitialize_ManifestIsAdditiveOnly(t *testing.T) {
	manifest := preset.NewStaticManifestSource(
		testAgent(preset.ResearcherID, "Manifest Researcher"),
		testAgent("summarizer-v1", "Summarizer"),
	)
	r := New(nil, func(o *Options) { o.Manifest = manifest })
	r.Initialize(context.Background())

	got, ok := r.GetAgent(preset.ResearcherID)
	require.True(t, ok)
	assert.NotEqual(t, "Manifest Researcher", got.Name, "manifest must never overwrite an existing id")

	_, ok = r.GetAgent("summarizer-v1")
	assert.True(t, ok, "manifest must add unknown ids")
}

func TestInitialize_SwallowsStorageFailure(t *testing.T) {
	r := New(failingStore{})

	assert.NotPanics(t, func() { r.Initialize(context.Background()) })
	assert.Len(t, r.AllAgents(), len(preset.Agents()), "presets must survive a storage failure")
}

func TestInitialize_MalformedSnapshotKeepsDefaults(t *testing.T) {
	store := storage.NewInMemory()
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, []byte("{not json")))

	r := New(store)
	r.Initialize(ctx)

	assert.Len(t, r.AllAgents(), len(preset.Agents()))
}

func TestInitialize_Idempotent(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	r.Initialize(ctx)
	require.NoError(t, r.RegisterAgent(ctx, testAgent("custom", "Custom")))
	before := r.AllAgents()

	r.Initialize(ctx)
	after := r.AllAgents()

	assert.Equal(t, before, after, "second Initialize must not duplicate, reorder or lose records")
}

func TestCreateCustomChain(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	chain, err := r.CreateCustomChain(ctx, "Pipeline", []string{"a1", "a2", "a3"})
	require.NoError(t, err)

	require.Len(t, chain.Steps, 3)
	assert.Equal(t, "a1", chain.Steps[0].AgentID)
	assert.Equal(t, "a2", chain.Steps[1].AgentID)
	assert.Equal(t, "a3", chain.Steps[2].AgentID)
	for i, s := range chain.Steps {
		assert.Nil(t, s.InputMapping, "step %d must carry no explicit mapping", i)
	}
	assert.NotEmpty(t, chain.ID)
	assert.Equal(t, "Pipeline", chain.Name)

	registered, ok := r.GetChain(chain.ID)
	require.True(t, ok, "custom chain must be registered")
	assert.Equal(t, chain.Steps, registered.Steps)
}

func TestCreateCustomChain_StepConfig(t *testing.T) {
	r := New(nil)

	chain, err := r.CreateCustomChain(context.Background(), "Tuned", []string{"a1", "a2"},
		func(o *CustomChainOptions) {
			o.Description = "tuned pipeline"
			o.StepConfig = map[string]any{"temperature": 0.2}
		})
	require.NoError(t, err)

	assert.Equal(t, "tuned pipeline", chain.Description)
	for _, s := range chain.Steps {
		assert.Equal(t, map[string]any{"temperature": 0.2}, s.Config)
	}
}

func TestResetToDefaults(t *testing.T) {
	r := New(nil)
	ctx := context.Background()
	r.Initialize(ctx)

	require.NoError(t, r.RegisterAgent(ctx, testAgent("custom", "Custom")))
	_, err := r.CreateCustomChain(ctx, "Custom Chain", []string{"custom"})
	require.NoError(t, err)

	r.ResetToDefaults(ctx)

	agents := r.AllAgents()
	require.Len(t, agents, len(preset.Agents()))
	for i, a := range preset.Agents() {
		assert.Equal(t, a.ID, agents[i].ID)
	}
	assert.Empty(t, r.AllChains())
}

func TestImportPresets(t *testing.T) {
	manifest := preset.NewStaticManifestSource(
		testAgent(preset.ResearcherID, "Clobber Attempt"),
		testAgent("new-1", "New One"),
		testAgent("new-2", "New Two"),
	)
	r := New(nil, func(o *Options) { o.Manifest = manifest })
	r.Initialize(context.Background())

	// Initialize already merged the manifest; everything is now known.
	result, err := r.ImportPresets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 0, Skipped: 3}, result)
}

func TestImportPresets_CountsImported(t *testing.T) {
	manifest := preset.NewStaticManifestSource(
		testAgent("new-1", "New One"),
		testAgent("new-2", "New Two"),
	)
	r := New(nil, func(o *Options) {
		o.PresetAgents = []core.Agent{testAgent("new-1", "Existing")}
		o.Manifest = manifest
	})
	// No Initialize: import directly against the bare catalog.
	require.NoError(t, r.RegisterAgent(context.Background(), testAgent("new-1", "Existing")))

	result, err := r.ImportPresets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 1, Skipped: 1}, result)

	existing, _ := r.GetAgent("new-1")
	assert.Equal(t, "Existing", existing.Name)
}

func TestImportPresets_NoManifest(t *testing.T) {
	r := New(nil)
	_, err := r.ImportPresets(context.Background())
	assert.ErrorIs(t, err, ErrNoManifest)
}

func TestRestore(t *testing.T) {
	store := newCountingStore()
	r := New(store, func(o *Options) { o.PresetAgents = nil })
	ctx := context.Background()

	agents := []core.Agent{testAgent("a", "A"), testAgent("b", "B")}
	chains := []core.Chain{{ID: "c1", Name: "C1", Steps: []core.ChainStep{{AgentID: "a"}}}}

	require.NoError(t, r.Restore(ctx, agents, chains))

	assert.Len(t, r.AllAgents(), 2)
	assert.Len(t, r.AllChains(), 1)
	assert.Equal(t, 1, store.writeCount(), "restore persists exactly once")
}

func TestRestore_RejectsInvalidRecords(t *testing.T) {
	r := New(nil)

	err := r.Restore(context.Background(), []core.Agent{{ID: "bad"}}, nil)

	assert.ErrorIs(t, err, core.ErrInvalidAgent)
	_, ok := r.GetAgent("bad")
	assert.False(t, ok, "nothing is applied when validation fails")
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := storage.NewInMemory()
	ctx := context.Background()

	r := New(store, func(o *Options) { o.PresetAgents = nil })
	require.NoError(t, r.RegisterAgent(ctx, testAgent("a", "A")))
	chain, err := r.CreateCustomChain(ctx, "Pipeline", []string{"a"})
	require.NoError(t, err)

	// A second registry over the same store sees the same catalog.
	r2 := New(store, func(o *Options) { o.PresetAgents = nil })
	r2.Initialize(ctx)

	got, ok := r2.GetChain(chain.ID)
	require.True(t, ok)
	assert.Equal(t, chain.Name, got.Name)
	_, ok = r2.GetAgent("a")
	assert.True(t, ok)
}
