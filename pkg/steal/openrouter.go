package steal

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type (
	openRouterProvider struct {
		client    *resty.Client
		model     string
		maxTokens int
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		MaxTokens   int           `json:"max_tokens,omitempty"`
		Temperature float64       `json:"temperature"`
	}

	chatResponse struct {
		ID      string `json:"id"`
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}

	chatError struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
)

func NewOpenRouterProvider(baseURL, apiKey, model string, maxTokens int, timeout time.Duration) Provider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Title", "recipe-box")

	return &openRouterProvider{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (p *openRouterProvider) Name() string { return "openrouter" }

func (p *openRouterProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var result chatResponse
	var apiErr chatError

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model:       p.model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			MaxTokens:   p.maxTokens,
			Temperature: 0,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", errors.Wrap(err, "openrouter request")
	}
	if resp.IsError() {
		return "", errors.Errorf("openrouter: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("openrouter: response has no choices")
	}
	return result.Choices[0].Message.Content, nil
}
