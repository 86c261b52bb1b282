package llm

import (
	"context"
	"errors"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Provider-agnostic failure classes. Callers branch on these to pick the
// user-facing message; everything else from a backend wraps ErrGateway.
var (
	ErrRateLimited   = errors.New("llm: rate limited")
	ErrQuotaExceeded = errors.New("llm: quota exceeded")
	ErrGateway       = errors.New("llm: gateway error")
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the full response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// ChatStream sends a chat history and invokes onDelta for every content
	// fragment as it arrives. Returns the assembled response. A canceled
	// context stops the stream and returns ctx.Err().
	ChatStream(ctx context.Context, history []Message, onDelta func(delta string), options ...Option) (string, error)
}
