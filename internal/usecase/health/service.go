package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the vector store itself is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckMissing indicates a namespace whose index does not exist.
	CheckMissing CheckResult = "missing"
)

// Check names.
const (
	CheckVectorStore = "vector_store"
	CheckLLM         = "llm"
	indexCheckPrefix = "index:"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Index pairs a namespace with the store index that backs it.
type Index struct {
	Namespace string
	Name      string
}

// Service coordinates health checks.
type Service struct {
	store   VectorStore
	llm     ProviderChecker
	indexes []Index
}

// New creates a Service. llm can be nil.
func New(store VectorStore, llm ProviderChecker, indexes []Index) *Service {
	return &Service{store: store, llm: llm, indexes: indexes}
}

// IndexCheckName returns the report key for a namespace index check.
func IndexCheckName(ns string) string {
	return indexCheckPrefix + ns
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	storeUp := s.store.Ping(ctx) == nil
	checks[CheckVectorStore] = result(storeUp)

	if s.llm != nil {
		checks[CheckLLM] = result(s.llm.HealthCheck(ctx) == nil)
	}

	for _, idx := range s.indexes {
		key := IndexCheckName(idx.Namespace)
		if !storeUp {
			checks[key] = CheckError
			continue
		}
		exists, err := s.store.IndexExists(ctx, idx.Name)
		switch {
		case err != nil:
			checks[key] = CheckError
		case !exists:
			checks[key] = CheckMissing
		default:
			checks[key] = CheckOK
		}
	}

	status := Healthy
	if !storeUp {
		status = Unhealthy
	} else {
		for _, v := range checks {
			if v != CheckOK {
				status = Degraded
				break
			}
		}
	}

	return Report{Status: status, Checks: checks}
}

func result(ok bool) CheckResult {
	if ok {
		return CheckOK
	}
	return CheckError
}
