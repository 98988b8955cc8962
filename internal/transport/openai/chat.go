package openai

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

var _ domain.Completer = (*Client)(nil)

// Complete implements domain.Completer with a single-turn chat completion.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	op := req.Purpose
	if op == "" {
		op = "chat"
	}

	// temperature is omitempty on the wire; zero would fall back to the API default of 1
	temperature := req.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: temperature,
		User:        c.user,
	})
	if err != nil {
		c.observe(req.Model, op, start, err)
		metrics.ProviderErrorsTotal.WithLabelValues(c.provider, req.Model, "api_error").Inc()
		c.logger.Warn("chat completion failed",
			zap.String("model", req.Model), zap.String("operation", op), zap.Error(err))
		return domain.CompletionResult{}, parseAPIError(err, "completion", domain.ErrCompletionProviderError)
	}

	if len(resp.Choices) == 0 {
		c.observe(req.Model, op, start, domain.ErrCompletionProviderError)
		metrics.ProviderErrorsTotal.WithLabelValues(c.provider, req.Model, "empty_response").Inc()
		return domain.CompletionResult{}, fmt.Errorf("empty completion response: %w", domain.ErrCompletionProviderError)
	}

	c.observe(req.Model, op, start, nil)
	c.recordTokens(req.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return domain.CompletionResult{
		Text:             strings.TrimSpace(resp.Choices[0].Message.Content),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}
