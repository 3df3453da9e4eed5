package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.Valid(), "role %s should be valid", r)
	}
	assert.False(t, Role("sorcerer").Valid())
	assert.False(t, Role("").Valid())
}

func TestAgentValidate(t *testing.T) {
	valid := Agent{
		ID:           "researcher-v1",
		Name:         "Research Specialist",
		Role:         RoleResearcher,
		SystemPrompt: "You research things.",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(a *Agent)
	}{
		{"missing id", func(a *Agent) { a.ID = "" }},
		{"missing name", func(a *Agent) { a.Name = "" }},
		{"missing system prompt", func(a *Agent) { a.SystemPrompt = "" }},
		{"unknown role", func(a *Agent) { a.Role = "wizard" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			err := a.Validate()
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAgent)
		})
	}
}

func TestAgentValidate_EmptyRoleAllowed(t *testing.T) {
	a := Agent{ID: "a1", Name: "A1", SystemPrompt: "prompt"}
	assert.NoError(t, a.Validate())
}

func TestChainValidate(t *testing.T) {
	valid := Chain{
		ID:    "pipeline-v1",
		Name:  "Pipeline",
		Steps: []ChainStep{{AgentID: "a1"}, {AgentID: "a2"}},
	}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), ErrInvalidChain)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrInvalidChain)

	emptyStep := valid
	emptyStep.Steps = []ChainStep{{AgentID: "a1"}, {}}
	assert.ErrorIs(t, emptyStep.Validate(), ErrInvalidChain)
}

func TestChainValidate_NoStepsIsStructurallyFine(t *testing.T) {
	// Chains may be registered before their steps are known; emptiness only
	// matters at execution time.
	c := Chain{ID: "empty", Name: "Empty"}
	assert.NoError(t, c.Validate())
}

func TestInvokerFunc(t *testing.T) {
	var got InvokeRequest
	inv := InvokerFunc(func(_ context.Context, req InvokeRequest) (string, error) {
		got = req
		return "ok", nil
	})

	content, err := inv.Invoke(context.Background(), InvokeRequest{Input: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, "ok", content)
	assert.Equal(t, "hello", got.Input)
}
