package ask

import (
	"context"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

// Searcher runs a nearest-neighbor query against a single namespace.
type Searcher interface {
	Query(ctx context.Context, ns namespace.Name, vector []float32, k int) ([]match.Match, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Completer produces chat completions for routing and answering.
type Completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error)
}
