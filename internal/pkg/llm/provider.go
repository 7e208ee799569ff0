package llm

import (
	"context"
	"errors"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyResponse = errors.New("llm returned empty response")

type Message struct {
	Role    string
	Content string
}

// ChatProvider produces one assistant reply for a system preamble plus the
// full ordered conversation. Any error means the backend is unavailable.
type ChatProvider interface {
	GenerateChatResponse(ctx context.Context, system string, history []Message) (string, error)
	Name() string
}

type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}
