// Package anthropic adapts the Anthropic Messages API to the core.Invoker
// port.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/agentchain/core"
)

// Options configure the Anthropic invoker (model id, temperature, max
// tokens, fallback API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64

	// APIKey is the fallback credential used when an invocation carries
	// none. Defaults to the SDK's environment lookup.
	APIKey string
}

// Invoker wraps the Anthropic Messages API behind the core.Invoker
// interface.
type Invoker struct {
	opts Options
}

// NewInvoker creates a new Anthropic invoker.
func NewInvoker(optFns ...func(o *Options)) *Invoker {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Invoker{opts: opts}
}

func (i *Invoker) client(credentials string) anthropic.Client {
	key := credentials
	if key == "" {
		key = i.opts.APIKey
	}
	if key == "" {
		return anthropic.NewClient()
	}
	return anthropic.NewClient(option.WithAPIKey(key))
}

// Invoke implements core.Invoker.
func (i *Invoker) Invoke(ctx context.Context, req core.InvokeRequest) (string, error) {
	client := i.client(req.Credentials)

	params := anthropic.MessageNewParams{
		Model:       i.opts.Model,
		MaxTokens:   i.opts.MaxTokens,
		Temperature: anthropic.Float(i.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Input)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	return b.String(), nil
}
