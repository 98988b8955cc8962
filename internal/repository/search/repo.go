package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/counsellor/internal/db"
	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

// jsonDocField is the attribute under which RedisJSON documents return their body.
const jsonDocField = "$"

// store is the consumer interface for vector queries (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Options tune how namespaces map onto store indexes.
type Options struct {
	// KeyPrefix precedes the namespace in both document keys and index names.
	KeyPrefix string
	// VectorField is the indexed vector attribute (db.DefaultVectorField when empty).
	VectorField string
	// ReturnFields restricts returned metadata; all stored fields when empty.
	ReturnFields []string
}

// Repo implements usecase/ask.Searcher.
type Repo struct {
	store store
	opts  Options
}

// New creates a search repository.
func New(s store, opts Options) *Repo {
	return &Repo{store: s, opts: opts}
}

// IndexName returns the store index backing a namespace.
func (r *Repo) IndexName(ns namespace.Name) string {
	return fmt.Sprintf("%s%s:idx", r.opts.KeyPrefix, ns)
}

// Query runs a k-nearest-neighbor query against one namespace.
func (r *Repo) Query(ctx context.Context, ns namespace.Name, vector []float32, k int) ([]match.Match, error) {
	q := &db.KNNQuery{
		IndexName:    r.IndexName(ns),
		Vector:       vector,
		K:            k,
		VectorField:  r.opts.VectorField,
		ReturnFields: r.opts.ReturnFields,
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search knn %s: %w", ns, err)
	}

	return r.toMatches(sr, ns), nil
}

func (r *Repo) toMatches(sr *db.SearchResult, ns namespace.Name) []match.Match {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	prefix := fmt.Sprintf("%s%s:", r.opts.KeyPrefix, ns)
	out := make([]match.Match, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, prefix)
		out = append(out, match.New(ns, id, entry.Score, parseMetadata(entry.Fields)))
	}
	return out
}

// parseMetadata turns flat hash fields into metadata. A JSON document body
// is decoded and merged; flat fields take precedence on conflicts.
// Numbers stay json.Number so phone numbers and ids keep their digits.
func parseMetadata(fields map[string]string) map[string]any {
	md := make(map[string]any, len(fields))

	if raw, ok := fields[jsonDocField]; ok {
		var doc map[string]any
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&doc); err == nil {
			for k, v := range doc {
				md[k] = v
			}
		}
	}

	for k, v := range fields {
		if k == jsonDocField {
			continue
		}
		md[k] = v
	}
	return md
}
