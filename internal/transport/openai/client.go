// Package openai adapts OpenAI-compatible HTTP APIs to the domain embedding and completion contracts.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

var _ domain.HealthChecker = (*Client)(nil)

// Config holds the provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	// EmbeddingModel is used by Embed; chat models come per request.
	EmbeddingModel string
	// Dimensions truncates embeddings when the model supports it (0 = model default).
	Dimensions int
	User       string
	Provider   string
	Logger     *zap.Logger
}

// Client talks to an OpenAI-compatible API for embeddings and chat completions.
type Client struct {
	client         *openai.Client
	embeddingModel openai.EmbeddingModel
	dimensions     int
	user           string
	provider       string
	logger         *zap.Logger
}

// NewClient creates an OpenAI-compatible provider client.
func NewClient(cfg *Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	provider := cfg.Provider
	if provider == "" {
		provider = "openai"
	}

	return &Client{
		client:         openai.NewClientWithConfig(clientCfg),
		embeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		dimensions:     cfg.Dimensions,
		user:           cfg.User,
		provider:       provider,
		logger:         logger,
	}
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Client) HealthCheck(ctx context.Context) error {
	start := time.Now()
	_, err := c.client.ListModels(ctx)
	c.observe("", metrics.OpModels, start, err)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// observe records request count and latency for one provider call.
func (c *Client) observe(model, op string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.ProviderRequestsTotal.WithLabelValues(c.provider, model, op, status).Inc()
	if err == nil {
		metrics.ProviderRequestDuration.WithLabelValues(c.provider, model, op).Observe(time.Since(start).Seconds())
	}
}

func (c *Client) recordTokens(model string, prompt, completion int) {
	if prompt > 0 {
		metrics.ProviderTokensTotal.WithLabelValues(c.provider, model, "prompt").Add(float64(prompt))
	}
	if completion > 0 {
		metrics.ProviderTokensTotal.WithLabelValues(c.provider, model, "completion").Add(float64(completion))
	}
}

// parseAPIError extracts a human-readable error from the API response and
// wraps it with the given domain sentinel for 502 mapping.
func parseAPIError(err error, kind string, wrap error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s request: %w: %w", kind, err, wrap)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail == "" {
			detail = string(reqErr.Body)
		}
		return fmt.Errorf("%s API error %d: %s: %w", kind, reqErr.HTTPStatusCode, detail, wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s API error %d: %s: %w", kind, apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("%s request failed: %w", kind, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body (Nebius error format).
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
