package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/counsellor/internal/domain/match"
)

func TestDedupe_KeepsBestPerPage(t *testing.T) {
	in := []match.Match{
		mk(nsFESBlogs, "uk#0", 0.70, map[string]any{"slug": "uk"}),
		mk(nsFESBlogs, "us#0", 0.60, map[string]any{"slug": "us"}),
		mk(nsFESBlogs, "uk#1", 0.80, map[string]any{"slug": "uk"}),
		mk(nsFESBlogs, "uk#2", 0.75, map[string]any{"slug": "uk"}),
	}

	out := Dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, "uk#1", out[0].ID(), "highest scoring chunk survives in the first group slot")
	assert.Equal(t, "us#0", out[1].ID())
}

func TestDedupe_KeyFallbacks(t *testing.T) {
	in := []match.Match{
		mk(nsFESPages, "1", 0.5, map[string]any{"link": "https://x/a"}),
		mk(nsFESPages, "2", 0.6, map[string]any{"url": "https://x/a"}),
		mk(nsFESPages, "3", 0.4, map[string]any{"title": "Same"}),
		mk(nsFESPages, "4", 0.3, map[string]any{"branch_name": "Same"}),
		mk(nsFESPages, "5", 0.2, nil),
		mk(nsFESPages, "6", 0.1, nil),
	}

	out := Dedupe(in)
	require.Len(t, out, 3)
	assert.Equal(t, "2", out[0].ID())
	assert.Equal(t, "3", out[1].ID())
	assert.Equal(t, "5", out[2].ID(), "untitled matches share one group")
}

func TestDedupe_FirstWinsOnTie(t *testing.T) {
	in := []match.Match{
		mk(nsFESBlogs, "a", 0.5, map[string]any{"slug": "p"}),
		mk(nsIDPBlogs, "b", 0.5, map[string]any{"slug": "p"}),
	}
	out := Dedupe(in)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID())
}

func TestDedupe_Idempotent(t *testing.T) {
	in := Aggregate([]match.Match{
		blogMatch(nsFESBlogs, "a", 0.9),
		blogMatch(nsFESBlogs, "a", 0.8),
		blogMatch(nsIDPBlogs, "b", 0.7),
		blogMatch(nsFESBlogs, "c", 0.95),
		blogMatch(nsIDPBlogs, "b", 0.99),
	}, 20)

	once := Dedupe(in)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)

	seen := map[string]bool{}
	for _, m := range once {
		assert.False(t, seen[m.PageKey()], "duplicate page key %q", m.PageKey())
		seen[m.PageKey()] = true
	}
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
