package chi

import (
	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
	askuc "github.com/kailas-cloud/counsellor/internal/usecase/ask"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeEmptyQuery    ErrorCode = "empty_query"
	ErrorCodeEmbedding     ErrorCode = "embedding_provider_error"
	ErrorCodeCompletion    ErrorCode = "completion_provider_error"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// AskRequest is the body of POST /v1/ask.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse is the reply to a question.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Outcome string   `json:"outcome"`
	Route   []string `json:"route"`
	Sources []Source `json:"sources"`
}

// Source is a lightweight citation of a match the answer drew on.
type Source struct {
	Namespace string  `json:"namespace"`
	ID        string  `json:"id"`
	Score     float64 `json:"score"`
	Title     string  `json:"title"`
	Link      string  `json:"link,omitempty"`
	Ref       string  `json:"ref"`
}

// NamespaceItem describes one routable namespace.
type NamespaceItem struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Primary     bool   `json:"primary"`
	Description string `json:"description"`
}

// NamespaceListResponse is the reply of GET /v1/namespaces.
type NamespaceListResponse struct {
	Items []NamespaceItem `json:"items"`
}

// HealthResponse is the reply of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func answerToResponse(a askuc.Answer) AskResponse {
	route := a.Route.Strings()
	sources := make([]Source, len(a.Matches))
	for i, m := range a.Matches {
		sources[i] = sourceFromMatch(m)
	}
	return AskResponse{
		Answer:  a.Text,
		Outcome: string(a.Outcome),
		Route:   route,
		Sources: sources,
	}
}

func sourceFromMatch(m match.Match) Source {
	return Source{
		Namespace: string(m.Namespace()),
		ID:        m.ID(),
		Score:     m.Score(),
		Title:     m.Title(),
		Link:      m.Link(),
		Ref:       m.SourceRef(),
	}
}

func namespacesToResponse(cat namespace.Catalog) NamespaceListResponse {
	entries := cat.Entries()
	items := make([]NamespaceItem, len(entries))
	for i, e := range entries {
		items[i] = NamespaceItem{
			Name:        string(e.Name()),
			Role:        string(e.Role()),
			Primary:     e.Primary(),
			Description: e.Description(),
		}
	}
	return NamespaceListResponse{Items: items}
}
