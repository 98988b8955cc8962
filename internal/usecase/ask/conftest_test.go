package ask

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
	"github.com/kailas-cloud/counsellor/internal/metrics"
)

const (
	nsFESBlogs  namespace.Name = "fes_blogs"
	nsIDPBlogs  namespace.Name = "idp_blogs"
	nsFESPages  namespace.Name = "fes_pages"
	nsContact   namespace.Name = "fes_contact_details"
	testAnswer                 = "Here is a grounded answer."
	testVectorN                = 4
)

// --- Mocks ---

type fakeSearcher struct {
	mu      sync.Mutex
	results map[namespace.Name][]match.Match
	errs    map[namespace.Name]error
	calls   []namespace.Name
	lastK   int
	// onQuery runs before each query returns.
	onQuery func(ns namespace.Name)
}

func (f *fakeSearcher) Query(_ context.Context, ns namespace.Name, _ []float32, k int) ([]match.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, ns)
	f.lastK = k
	if f.onQuery != nil {
		f.onQuery(ns)
	}
	if err := f.errs[ns]; err != nil {
		return nil, err
	}
	return f.results[ns], nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	f.calls++
	if f.err != nil {
		return domain.EmbeddingResult{}, f.err
	}
	return domain.EmbeddingResult{Embedding: make([]float32, testVectorN)}, nil
}

// fakeCompleter answers routing and generation calls separately.
type fakeCompleter struct {
	route     string
	routeErr  error
	answer    string
	answerErr error

	routingCalls int
	answerCalls  int
	lastAnswer   domain.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	switch req.Purpose {
	case metrics.OpRouting:
		f.routingCalls++
		return domain.CompletionResult{Text: f.route}, f.routeErr
	case metrics.OpAnswer:
		f.answerCalls++
		f.lastAnswer = req
		return domain.CompletionResult{Text: f.answer}, f.answerErr
	default:
		return domain.CompletionResult{}, fmt.Errorf("unexpected purpose %q", req.Purpose)
	}
}

// --- Fixtures ---

func testCatalog(t *testing.T) namespace.Catalog {
	t.Helper()
	entries := make([]namespace.Entry, 0, 4)
	for _, def := range []struct {
		name    namespace.Name
		role    namespace.Role
		primary bool
		desc    string
	}{
		{nsFESBlogs, namespace.RoleBlog, true, "FES blog articles"},
		{nsIDPBlogs, namespace.RoleBlog, false, "IDP blog articles"},
		{nsFESPages, namespace.RoleServices, true, "FES service pages"},
		{nsContact, namespace.RoleContact, true, "branch addresses, phone numbers, emails"},
	} {
		e, err := namespace.NewEntry(string(def.name), def.role, def.primary, def.desc)
		require.NoError(t, err)
		entries = append(entries, e)
	}
	cat, err := namespace.NewCatalog(entries)
	require.NoError(t, err)
	return cat
}

func newTestService(t *testing.T, s *fakeSearcher, e *fakeEmbedder, c *fakeCompleter) *Service {
	t.Helper()
	return New(testCatalog(t), s, e, c, DefaultOptions())
}

func mk(ns namespace.Name, id string, score float64, md map[string]any) match.Match {
	return match.New(ns, id, score, md)
}

func contactMatch(id, branch string, score float64) match.Match {
	return mk(nsContact, id, score, map[string]any{
		"branch_name": branch,
		"address":     branch + " Road",
		"phone":       "+92 300 0000000",
		"email":       "info@example.com",
		"slug":        id,
	})
}

func blogMatch(ns namespace.Name, slug string, score float64) match.Match {
	return mk(ns, slug+"#0", score, map[string]any{
		"title": "Post " + slug,
		"slug":  slug,
		"link":  "https://example.com/" + slug,
		"chunk": "Some   useful\n text about " + slug,
	})
}
