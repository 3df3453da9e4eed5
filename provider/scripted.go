package provider

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/agentchain/core"
)

// ErrScriptExhausted is returned when a ScriptedInvoker receives more calls
// than it has scripted results.
var ErrScriptExhausted = errors.New("provider: script exhausted")

// ScriptedResult is one canned outcome for a ScriptedInvoker.
type ScriptedResult struct {
	Content string
	Err     error
}

// Text builds a successful scripted result.
func Text(content string) ScriptedResult { return ScriptedResult{Content: content} }

// Failure builds a failing scripted result.
func Failure(err error) ScriptedResult { return ScriptedResult{Err: err} }

// ScriptedInvoker replays a fixed sequence of results, one per call, and
// records every request it receives. Deterministic stand-in for a model
// provider in tests and examples.
type ScriptedInvoker struct {
	mu       sync.Mutex
	script   []ScriptedResult
	next     int
	requests []core.InvokeRequest
}

// NewScriptedInvoker creates an invoker that answers calls with results in
// order.
func NewScriptedInvoker(results ...ScriptedResult) *ScriptedInvoker {
	return &ScriptedInvoker{script: results}
}

// Invoke implements core.Invoker.
func (s *ScriptedInvoker) Invoke(_ context.Context, req core.InvokeRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.next >= len(s.script) {
		return "", ErrScriptExhausted
	}
	result := s.script[s.next]
	s.next++
	return result.Content, result.Err
}

// Requests returns a copy of every request received so far, in call order.
func (s *ScriptedInvoker) Requests() []core.InvokeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.InvokeRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls returns how many times Invoke has been called.
func (s *ScriptedInvoker) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
