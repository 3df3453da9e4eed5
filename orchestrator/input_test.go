package orchestrator

import (
	"strings"
	"testing"

	"github.com/hupe1980/agentchain/core"
	"github.com/stretchr/testify/assert"
)

func TestRunContext_FirstStepVerbatim(t *testing.T) {
	c := newRunContext(core.ChainInput{Task: "the task"})
	assert.Equal(t, "the task", c.resolveInput(0, nil))
}

func TestRunContext_DefaultUsesLastSuccess(t *testing.T) {
	c := newRunContext(core.ChainInput{Task: "the task"})
	c.merge("a1", "first output")
	c.merge("a2", "second output")

	got := c.resolveInput(2, nil)
	assert.Contains(t, got, "second output")
	assert.NotContains(t, got, "first output")
	assert.Contains(t, got, "the task")
}

func TestRunContext_DefaultFallsBackToTask(t *testing.T) {
	c := newRunContext(core.ChainInput{Task: "only the task"})
	// No step has succeeded yet.
	assert.Equal(t, "only the task", c.resolveInput(3, nil))
}

func TestRunContext_MappingSelectsAndLabels(t *testing.T) {
	c := newRunContext(core.ChainInput{Task: "write a post"})
	c.merge("research", "findings here")
	c.merge("outline", "outline here")

	got := c.resolveInput(2, map[string]string{
		"research": "Research",
		"outline":  "", // empty label falls back to the key
	})

	assert.Contains(t, got, "## Research\n\nfindings here")
	assert.Contains(t, got, "## outline\n\noutline here")
	assert.NotContains(t, got, "write a post", "unmapped task stays out")
}

func TestRunContext_MappingIsDeterministic(t *testing.T) {
	c := newRunContext(core.ChainInput{Task: "t"})
	c.merge("b", "bee")
	c.merge("a", "ay")

	mapping := map[string]string{"b": "B", "a": "A"}
	first := c.resolveInput(2, mapping)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.resolveInput(2, mapping))
	}
	assert.Less(t, strings.Index(first, "## A"), strings.Index(first, "## B"), "sections follow sorted key order")
}

func TestRunContext_MappingWithNoMatchesFallsBackToTask(t *testing.T) {
	c := newRunContext(core.ChainInput{Task: "fallback task"})
	got := c.resolveInput(1, map[string]string{"never-ran": "Ghost"})
	assert.Equal(t, "fallback task", got)
}

func TestRunContext_SeedEntriesDoNotShadowTask(t *testing.T) {
	c := newRunContext(core.ChainInput{
		Task:    "real task",
		Context: map[string]string{core.TaskKey: "imposter"},
	})
	assert.Equal(t, "real task", c.resolveInput(0, nil))
	got := c.resolveInput(1, map[string]string{core.TaskKey: "Task"})
	assert.Contains(t, got, "real task")
}
