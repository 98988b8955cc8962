package ask

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

func TestRouter_Route(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want namespace.Route
	}{
		{"single", "fes_pages", namespace.Route{nsFESPages}},
		{"pair", "fes_blogs + idp_blogs", namespace.Route{nsFESBlogs, nsIDPBlogs}},
		{"untrimmed", "  idp_blogs+fes_blogs \n", namespace.Route{nsIDPBlogs, nsFESBlogs}},
		{"duplicates", "fes_blogs + fes_blogs", namespace.Route{nsFESBlogs}},
		{"unknown dropped", "fes_blogs + news", namespace.Route{nsFESBlogs}},
		{"contact stays alone", "fes_contact_details + fes_pages", namespace.Route{nsContact}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &fakeCompleter{route: tc.raw}
			r := NewRouter(c, testCatalog(t), "FES", "gpt-4o-mini", 0)

			got, err := r.Route(context.Background(), "query")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 1, c.routingCalls)
		})
	}
}

func TestRouter_EmptyOutput(t *testing.T) {
	r := NewRouter(&fakeCompleter{route: "   "}, testCatalog(t), "FES", "m", 0)

	_, err := r.Route(context.Background(), "query")
	require.ErrorIs(t, err, domain.ErrEmptyRoute)
}

func TestRouter_Unroutable(t *testing.T) {
	r := NewRouter(&fakeCompleter{route: "unknown_namespace"}, testCatalog(t), "FES", "m", 0)

	_, err := r.Route(context.Background(), "query")
	require.ErrorIs(t, err, domain.ErrUnroutable)

	var rerr *domain.RoutingError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "unknown_namespace", rerr.Raw)
}

func TestRouter_CompletionError(t *testing.T) {
	upstream := errors.New("boom")
	r := NewRouter(&fakeCompleter{routeErr: upstream}, testCatalog(t), "FES", "m", 0)

	_, err := r.Route(context.Background(), "query")
	require.ErrorIs(t, err, upstream)

	var rerr *domain.RoutingError
	assert.False(t, errors.As(err, &rerr))
}
