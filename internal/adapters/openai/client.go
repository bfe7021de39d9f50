package openaiad

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"hotel_quoter/internal/adapters/observability"
)

// Client wraps the OpenAI chat-completions endpoint behind the
// CompletionClient port. One bounded attempt per call, no retries: a failed
// attempt makes the caller fall through to deterministic extraction instead
// of backing off.
type Client struct {
	c       *openai.Client
	model   string
	timeout time.Duration
	rl      *rate.Limiter
}

func New(key, model, baseURL string, timeout time.Duration, rps int) (*Client, error) {
	if key == "" {
		return nil, errors.New("API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if rps <= 0 {
		rps = 3
	}
	cfg := openai.DefaultConfig(key)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		c:       openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// CompleteJSON sends the system instruction plus user message and returns the
// raw reply text. The model is asked for JSON; parsing is the caller's job.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		observability.ObserveExternal("openai", "chat_completions", 0, time.Since(start))
		return "", fmt.Errorf("chat completion: %w", err)
	}
	observability.ObserveExternal("openai", "chat_completions", 200, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
