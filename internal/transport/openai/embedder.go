package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

var _ domain.Embedder = (*Client)(nil)

// Embed implements domain.Embedder. Returns the vector and usage with transport-level metrics.
func (c *Client) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	model := string(c.embeddingModel)
	req := openai.EmbeddingRequest{
		Input:          []string{text},
		Model:          c.embeddingModel,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
		User:           c.user,
	}
	if c.dimensions > 0 {
		req.Dimensions = c.dimensions
	}

	start := time.Now()
	resp, err := c.client.CreateEmbeddings(ctx, req)
	if err != nil {
		c.observe(model, metrics.OpEmbedding, start, err)
		metrics.ProviderErrorsTotal.WithLabelValues(c.provider, model, "api_error").Inc()
		c.logger.Warn("embedding request failed", zap.String("model", model), zap.Error(err))
		return domain.EmbeddingResult{}, parseAPIError(err, "embedding", domain.ErrEmbeddingProviderError)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		c.observe(model, metrics.OpEmbedding, start, domain.ErrEmbeddingProviderError)
		metrics.ProviderErrorsTotal.WithLabelValues(c.provider, model, "empty_response").Inc()
		return domain.EmbeddingResult{}, fmt.Errorf("empty embedding response: %w", domain.ErrEmbeddingProviderError)
	}

	c.observe(model, metrics.OpEmbedding, start, nil)
	c.recordTokens(model, resp.Usage.PromptTokens, 0)

	return domain.EmbeddingResult{
		Embedding:    resp.Data[0].Embedding,
		PromptTokens: resp.Usage.PromptTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}, nil
}
