package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/counsellor/internal/domain"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
	"github.com/kailas-cloud/counsellor/internal/logger"
	askuc "github.com/kailas-cloud/counsellor/internal/usecase/ask"
	healthuc "github.com/kailas-cloud/counsellor/internal/usecase/health"
)

const maxBodyBytes = 64 << 10

// Asker answers user questions.
type Asker interface {
	Ask(ctx context.Context, query string) (askuc.Answer, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the question answering HTTP API.
type Server struct {
	ask           Asker
	health        HealthChecker
	catalog       namespace.Catalog
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(ask Asker, health HealthChecker, catalog namespace.Catalog, logger *zap.Logger) *Server {
	s := &Server{
		ask:     ask,
		health:  health,
		catalog: catalog,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, ErrorCodeEmptyQuery),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, ErrorCodeEmbedding),
		sentinelHandler(domain.ErrCompletionProviderError, http.StatusBadGateway, ErrorCodeCompletion),
	}
	return s
}

// Routes mounts the API onto r.
func (s *Server) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/ask", s.PostAsk)
		r.Get("/ask", s.GetAsk)
		r.Get("/namespaces", s.ListNamespaces)
	})
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())
}

// PostAsk handles POST /v1/ask.
func (s *Server) PostAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.answer(w, r, req.Query)
}

// GetAsk handles GET /v1/ask?q=...
func (s *Server) GetAsk(w http.ResponseWriter, r *http.Request) {
	var q string
	if err := runtime.BindQueryParameter("form", true, true, "q", r.URL.Query(), &q); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid query parameter: "+err.Error())
		return
	}
	s.answer(w, r, q)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, query string) {
	ans, err := s.ask.Ask(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerToResponse(ans))
}

// ListNamespaces handles GET /v1/namespaces.
func (s *Server) ListNamespaces(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, namespacesToResponse(s.catalog))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The client sees the sentinel text only, never the wrapped provider detail.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("ask failed", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
