package ask

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

// Router classifies a query into the namespaces worth searching.
type Router struct {
	completer   Completer
	catalog     namespace.Catalog
	model       string
	temperature float32
	prompt      string
}

// NewRouter creates a router whose directive is rendered from the catalog.
func NewRouter(c Completer, cat namespace.Catalog, org, model string, temperature float32) *Router {
	return &Router{
		completer:   c,
		catalog:     cat,
		model:       model,
		temperature: temperature,
		prompt:      routerPrompt(org, cat),
	}
}

// Route makes exactly one classification call and parses its output.
// Blank output yields a RoutingError wrapping domain.ErrEmptyRoute;
// output naming no known namespace yields one wrapping domain.ErrUnroutable.
func (r *Router) Route(ctx context.Context, query string) (namespace.Route, error) {
	res, err := r.completer.Complete(ctx, domain.CompletionRequest{
		Model:       r.model,
		System:      r.prompt,
		User:        query,
		Temperature: r.temperature,
		Purpose:     metrics.OpRouting,
	})
	if err != nil {
		return nil, fmt.Errorf("classify query: %w", err)
	}

	raw := strings.TrimSpace(res.Text)
	if raw == "" {
		return nil, domain.NewRoutingError("", domain.ErrEmptyRoute)
	}

	route := r.catalog.ParseRoute(raw)
	if len(route) == 0 {
		return nil, domain.NewRoutingError(raw, domain.ErrUnroutable)
	}
	return route, nil
}
