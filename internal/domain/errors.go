package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery signals a blank user query.
	ErrEmptyQuery = errors.New("empty query")
	// ErrEmptyRoute signals that the router produced no output at all.
	ErrEmptyRoute = errors.New("empty route")
	// ErrUnroutable signals that the router output named no known namespace.
	ErrUnroutable = errors.New("unroutable query")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrCompletionProviderError signals a chat completion provider failure.
	ErrCompletionProviderError = errors.New("completion provider error")
)

// RoutingError carries the raw router output next to the routing sentinel it wraps.
type RoutingError struct {
	Raw string
	Err error
}

func (e *RoutingError) Error() string {
	if e.Raw == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: router said %q", e.Err.Error(), e.Raw)
}

func (e *RoutingError) Unwrap() error { return e.Err }

// NewRoutingError creates a routing error for the given raw router output.
func NewRoutingError(raw string, sentinel error) error {
	return &RoutingError{Raw: raw, Err: sentinel}
}
