package ask

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
	"github.com/kailas-cloud/counsellor/internal/logger"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

// Retriever fans a query vector out over the routed namespaces.
type Retriever struct {
	searcher Searcher
	k        int
	parallel int
}

// NewRetriever creates a retriever asking each namespace for k matches.
// parallel > 1 bounds concurrent namespace queries; otherwise they run in order.
func NewRetriever(s Searcher, k, parallel int) *Retriever {
	return &Retriever{searcher: s, k: k, parallel: parallel}
}

// Search queries every namespace of the route and concatenates the results in
// route order. A failing namespace is logged and contributes nothing.
func (r *Retriever) Search(ctx context.Context, vector []float32, route namespace.Route) []match.Match {
	perNS := make([][]match.Match, len(route))

	if r.parallel > 1 && len(route) > 1 {
		var g errgroup.Group
		g.SetLimit(r.parallel)
		for i, ns := range route {
			i, ns := i, ns
			g.Go(func() error {
				perNS[i] = r.query(ctx, ns, vector)
				return nil
			})
		}
		_ = g.Wait() // per-namespace errors are absorbed in query
	} else {
		for i, ns := range route {
			perNS[i] = r.query(ctx, ns, vector)
		}
	}

	var out []match.Match
	for _, ms := range perNS {
		out = append(out, ms...)
	}
	return out
}

func (r *Retriever) query(ctx context.Context, ns namespace.Name, vector []float32) []match.Match {
	matches, err := r.searcher.Query(ctx, ns, vector, r.k)
	if err != nil {
		metrics.NamespaceQueriesTotal.WithLabelValues(string(ns), metrics.StatusError).Inc()
		logger.FromContext(ctx).Warn("namespace query failed",
			zap.String("namespace", string(ns)),
			zap.Error(err),
		)
		return nil
	}

	metrics.NamespaceQueriesTotal.WithLabelValues(string(ns), metrics.StatusOK).Inc()
	metrics.NamespaceMatchesTotal.WithLabelValues(string(ns)).Add(float64(len(matches)))
	return matches
}
