package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ErrEmptyReply is returned when the service answers without any choice
var ErrEmptyReply = errors.New("llm: empty reply")

// Completer sends one prompt to a chat completion service and returns the text reply
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config holds connection settings for the completion service
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	MockAPI bool
}

// Client represents an OpenAI-compatible chat completion client
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	mockAPI bool
}

// NewClient creates a new completion client
func NewClient(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		mockAPI: cfg.MockAPI,
	}
}

// Complete performs a single chat completion round trip. No retries.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.mockAPI {
		return c.mockComplete(prompt)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Message.Content, nil
}

// mockComplete answers with a fixed well-formed analysis for local development
func (c *Client) mockComplete(prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyReply
	}
	return `{
    "performance_analysis": "Mock analysis: metrics look consistent with the platform average.",
    "budget_recommendations": "Shift 20% of spend toward the best converting ad sets.",
    "targeting_suggestions": "Test a lookalike audience built from recent converters.",
    "copy_optimization": "A/B test a headline with a concrete number and a deadline.",
    "roi_strategies": "Lower CPA by pausing keywords with no conversions.",
    "overall_score": 70
}`, nil
}
