package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
	"github.com/kailas-cloud/counsellor/internal/logger"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

// Outcome names the path a query took through the pipeline.
type Outcome string

// Pipeline outcomes.
const (
	OutcomeGenerated       Outcome = "generated"
	OutcomeContactShortcut Outcome = "contact_shortcut"
	OutcomeEmptyRoute      Outcome = "empty_route"
	OutcomeUnroutable      Outcome = "unroutable"
	OutcomeNoMatches       Outcome = "no_matches"

	outcomeError Outcome = "error"
)

// User-facing fallback replies.
const (
	MsgEmptyRoute = "Sorry, I couldn't route your query. Please rephrase."
	MsgUnroutable = "I couldn't map the request to a known dataset. Router said: "
	MsgNoMatches  = "I couldn't find relevant information in the knowledge base."
)

// Answer is the reply to a single query.
type Answer struct {
	Text    string
	Outcome Outcome
	Route   namespace.Route
	// Matches are the deduplicated sources the reply was built from.
	Matches []match.Match
}

// Service runs route → embed → retrieve → aggregate → dedupe → answer.
type Service struct {
	router    *Router
	retriever *Retriever
	embed     Embedder
	completer Completer
	catalog   namespace.Catalog
	opts      Options
	system    string
}

// New creates the question answering service.
func New(cat namespace.Catalog, searcher Searcher, embed Embedder, completer Completer, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		router:    NewRouter(completer, cat, opts.Organization, opts.RouterModel, opts.RouterTemperature),
		retriever: NewRetriever(searcher, opts.TopKPerNamespace, opts.ParallelNamespaceQueries),
		embed:     embed,
		completer: completer,
		catalog:   cat,
		opts:      opts,
		system:    answerPrompt(opts.Organization, cat),
	}
}

// Organization returns the name the assistant speaks for.
func (s *Service) Organization() string {
	return s.opts.Organization
}

// Catalog returns the known namespaces.
func (s *Service) Catalog() namespace.Catalog {
	return s.catalog
}

// trace collects per-call figures for the completion log line.
type trace struct {
	retrieved    int
	contextChars int
}

// Ask answers one query. Routing failures and empty retrieval come back as an
// Answer with a fixed message; provider failures come back as errors.
func (s *Service) Ask(ctx context.Context, query string) (Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Answer{}, domain.ErrEmptyQuery
	}

	start := time.Now()
	var tr trace
	ans, err := s.ask(ctx, query, &tr)
	s.record(ctx, ans, tr, err, time.Since(start))
	return ans, err
}

func (s *Service) ask(ctx context.Context, query string, tr *trace) (Answer, error) {
	route, err := s.router.Route(ctx, query)
	if err != nil {
		if ans, ok := routingAnswer(err); ok {
			return ans, nil
		}
		return Answer{}, fmt.Errorf("route: %w", err)
	}

	emb, err := s.embed.Embed(ctx, query)
	if err != nil {
		return Answer{Route: route}, fmt.Errorf("embed query: %w", err)
	}

	matches := s.retriever.Search(ctx, emb.Embedding, route)
	tr.retrieved = len(matches)
	if err := ctx.Err(); err != nil {
		return Answer{Route: route}, fmt.Errorf("retrieve: %w", err)
	}

	matches = Aggregate(matches, s.opts.MaxMatches)
	if len(matches) == 0 {
		return Answer{Text: MsgNoMatches, Outcome: OutcomeNoMatches, Route: route}, nil
	}

	matches = Dedupe(matches)

	contact, _ := s.catalog.Contact()
	if text, ok := ContactAnswer(matches, contact, s.opts.Organization, s.opts.ContactShortcutLimit); ok {
		return Answer{Text: text, Outcome: OutcomeContactShortcut, Route: route, Matches: matches}, nil
	}

	contextText := BuildContext(matches, s.opts.SnippetChars, s.opts.MaxContextChars)
	tr.contextChars = len([]rune(contextText))
	metrics.ContextChars.Observe(float64(tr.contextChars))

	res, err := s.completer.Complete(ctx, domain.CompletionRequest{
		Model:       s.opts.AnswerModel,
		System:      s.system,
		User:        userMessage(query, contextText),
		Temperature: s.opts.AnswerTemperature,
		Purpose:     metrics.OpAnswer,
	})
	if err != nil {
		return Answer{Route: route, Matches: matches}, fmt.Errorf("generate answer: %w", err)
	}

	return Answer{Text: res.Text, Outcome: OutcomeGenerated, Route: route, Matches: matches}, nil
}

// routingAnswer maps router failures that have a fixed reply.
func routingAnswer(err error) (Answer, bool) {
	var rerr *domain.RoutingError
	if !errors.As(err, &rerr) {
		return Answer{}, false
	}
	switch {
	case errors.Is(err, domain.ErrEmptyRoute):
		return Answer{Text: MsgEmptyRoute, Outcome: OutcomeEmptyRoute}, true
	case errors.Is(err, domain.ErrUnroutable):
		return Answer{Text: MsgUnroutable + rerr.Raw, Outcome: OutcomeUnroutable}, true
	}
	return Answer{}, false
}

// record emits the canonical ask_completed line and the outcome counter.
func (s *Service) record(ctx context.Context, ans Answer, tr trace, err error, d time.Duration) {
	outcome := ans.Outcome
	if err != nil {
		outcome = outcomeError
	}
	metrics.AskOutcomesTotal.WithLabelValues(string(outcome)).Inc()

	fields := []zap.Field{
		zap.String("outcome", string(outcome)),
		zap.String("route", ans.Route.String()),
		zap.Int("retrieved", tr.retrieved),
		zap.Int("matches", len(ans.Matches)),
		zap.Int("context_chars", tr.contextChars),
		zap.Duration("duration", d),
	}
	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn("ask_completed", append(fields, zap.Error(err))...)
		return
	}
	log.Info("ask_completed", fields...)
}
