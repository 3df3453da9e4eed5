package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/agentchain/core"
)

// runContext is the accumulating set of prior step outputs, keyed by
// originating agent id, plus the chain's initial task under core.TaskKey.
// It is local to one execution; concurrent executions share nothing.
type runContext struct {
	task    string
	entries map[string]string
	last    string // content of the most recent successful step
}

func newRunContext(input core.ChainInput) *runContext {
	entries := make(map[string]string, len(input.Context)+1)
	for k, v := range input.Context {
		entries[k] = v
	}
	entries[core.TaskKey] = input.Task
	return &runContext{task: input.Task, entries: entries}
}

// merge records a successful step's content so later mappings can reference
// it. Failed steps never merge; their agent id stays absent from the
// context.
func (c *runContext) merge(agentID, content string) {
	c.entries[agentID] = content
	c.last = content
}

// resolveInput computes one step's input. An explicit mapping selects and
// labels entries from the accumulated context. Without a mapping, the first
// step receives the initial task verbatim and later steps receive the most
// recent successful output composed with the original task; if no step has
// succeeded yet, the task alone.
func (c *runContext) resolveInput(stepIndex int, mapping map[string]string) string {
	if len(mapping) > 0 {
		return c.applyMapping(mapping)
	}
	if stepIndex == 0 || c.last == "" {
		return c.task
	}
	return fmt.Sprintf("%s\n\nOriginal task: %s", c.last, c.task)
}

// applyMapping renders the selected context entries as labeled sections.
// Keys are iterated in sorted order so the composed input is deterministic.
// Entries absent from the context (e.g. a failed step's id) are skipped; if
// nothing matches, the task alone is used.
func (c *runContext) applyMapping(mapping map[string]string) string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		content, ok := c.entries[key]
		if !ok || content == "" {
			continue
		}
		label := mapping[key]
		if label == "" {
			label = key
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", label, content)
	}

	if b.Len() == 0 {
		return c.task
	}
	return strings.TrimRight(b.String(), "\n")
}
