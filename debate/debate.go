// Package debate runs a two-persona design debate: an architect proposes a
// solution, a critic reviews it, and the pair alternate for a fixed number
// of turns before the architect delivers a final consensus. The transcript
// keeps every turn timestamped; <think> reasoning blocks are stripped so
// one persona's scratchpad never leaks into the other's input.
package debate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hupe1980/agentchain/core"
	"github.com/hupe1980/agentchain/preset"
)

var thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Turn is one timestamped contribution to the debate transcript.
type Turn struct {
	Speaker   string    `json:"speaker"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the full record of a debate: every turn in order plus the
// architect's final consensus.
type Transcript struct {
	Topic     string `json:"topic"`
	Turns     []Turn `json:"transcript"`
	Consensus string `json:"finalConsensus"`
}

// Options configures a debate.
type Options struct {
	// Rounds is the number of propose/critique exchanges before the final
	// consensus. Defaults to 3.
	Rounds int

	// Provider hints which model service both personas use.
	Provider string

	// Architect and Critic override the built-in personas.
	Architect core.Agent
	Critic    core.Agent
}

func presetAgent(id string) core.Agent {
	for _, a := range preset.Agents() {
		if a.ID == id {
			return a
		}
	}
	return core.Agent{}
}

// Run executes the debate against invoker. On a provider error the
// transcript collected so far is returned alongside the error, so callers
// can still render the partial exchange.
func Run(ctx context.Context, invoker core.Invoker, topic, credentials string, optFns ...func(o *Options)) (*Transcript, error) {
	opts := Options{
		Rounds:    3,
		Architect: presetAgent(preset.ArchitectID),
		Critic:    presetAgent(preset.CriticID),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rounds < 1 {
		opts.Rounds = 1
	}

	transcript := &Transcript{Topic: topic}
	var last string

	speak := func(agent core.Agent, speaker, input string) (string, error) {
		content, err := invoker.Invoke(ctx, core.InvokeRequest{
			SystemPrompt: agent.SystemPrompt,
			Input:        input,
			Credentials:  credentials,
			Provider:     opts.Provider,
		})
		if err != nil {
			return "", fmt.Errorf("debate: %s turn: %w", strings.ToLower(speaker), err)
		}
		clean := strings.TrimSpace(thinkRe.ReplaceAllString(content, ""))
		transcript.Turns = append(transcript.Turns, Turn{Speaker: speaker, Content: clean, Timestamp: time.Now()})
		return clean, nil
	}

	for i := 0; i < opts.Rounds; i++ {
		var prompt string
		if i == 0 {
			prompt = fmt.Sprintf("Please propose a solution for: %s", topic)
		} else {
			prompt = fmt.Sprintf("The Critic raised these points:\n%s\n\nRefine your design.", last)
		}

		proposal, err := speak(opts.Architect, "Architect", prompt)
		if err != nil {
			return transcript, err
		}
		last = proposal

		critique, err := speak(opts.Critic, "Critic", fmt.Sprintf("The Architect proposed:\n%s\n\nCritique this design.", last))
		if err != nil {
			return transcript, err
		}
		last = critique
	}

	consensus, err := speak(opts.Architect, "Architect (Final)",
		fmt.Sprintf("Considering the Critic's feedback:\n%s\n\nProvide the FINAL, polished solution.", last))
	if err != nil {
		return transcript, err
	}
	transcript.Consensus = consensus

	return transcript, nil
}
