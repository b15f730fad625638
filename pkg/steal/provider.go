package steal

import (
	"context"
	"time"

	"recipe-box/internal/utils"

	"github.com/pkg/errors"
)

// Provider sends one prompt to a language model and returns its text answer.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NewProvider picks the provider named by AI_PROVIDER. "none" disables
// extraction and returns a nil provider.
func NewProvider(cfg *utils.Config) (Provider, error) {
	timeout := time.Duration(cfg.AITimeoutSeconds) * time.Second
	switch cfg.AIProvider {
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			return nil, errors.New("OPENROUTER_API_KEY is required for the openrouter provider")
		}
		return NewOpenRouterProvider(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.AIMaxTokens, timeout), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AIMaxTokens, timeout), nil
	case "none", "":
		return nil, nil
	default:
		return nil, errors.Errorf("unknown AI_PROVIDER %q", cfg.AIProvider)
	}
}
