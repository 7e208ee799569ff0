package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewChatProvider builds the configured backend. It returns nil, nil when no
// backend is configured or the API key is missing, which callers treat as
// "always use the fallback".
func NewChatProvider(ctx context.Context, cfg Config) (ChatProvider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch name {
	case "", "none":
		return nil, nil
	case "mock":
		return NewMockProvider(), nil
	case "openai", "gemini", "anthropic":
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}

	if cfg.APIKey == "" {
		return nil, nil
	}

	switch name {
	case "gemini":
		client, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		return client, nil
	case "anthropic":
		return NewAnthropicClient(cfg), nil
	default:
		return NewOpenAIClient(cfg), nil
	}
}
