// Package openai adapts the OpenAI Chat Completions API to the
// core.Invoker port. Each invocation is a single system+user exchange; the
// request's credentials select the API key so one adapter can serve
// multiple callers.
package openai

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentchain/core"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Options configure the OpenAI invoker. Fields mirror a minimal subset of
// Chat Completion parameters; extend via functional options without
// breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64

	// APIKey is the fallback credential used when an invocation carries
	// none. Defaults to the SDK's environment lookup.
	APIKey string
}

// Invoker wraps the OpenAI Chat Completions API behind the core.Invoker
// interface.
type Invoker struct {
	opts Options
}

// NewInvoker creates a new OpenAI invoker.
func NewInvoker(optFns ...func(o *Options)) *Invoker {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Invoker{opts: opts}
}

func (i *Invoker) client(credentials string) openai.Client {
	key := credentials
	if key == "" {
		key = i.opts.APIKey
	}
	if key == "" {
		return openai.NewClient()
	}
	return openai.NewClient(option.WithAPIKey(key))
}

// Invoke implements core.Invoker.
func (i *Invoker) Invoke(ctx context.Context, req core.InvokeRequest) (string, error) {
	client := i.client(req.Credentials)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Input))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               i.opts.Model,
		Messages:            messages,
		Temperature:         openai.Float(i.opts.Temperature),
		MaxCompletionTokens: openai.Int(i.opts.MaxCompletionTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
