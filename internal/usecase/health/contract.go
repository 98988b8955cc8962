package health

import "context"

// VectorStore checks vector index availability.
type VectorStore interface {
	Ping(ctx context.Context) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// ProviderChecker checks language model provider availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}
