package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the engine answers and every index is present.
	Healthy Status = "ok"
	// Degraded indicates the engine answers but an index is missing or unreadable.
	Degraded Status = "degraded"
	// Unhealthy indicates the engine is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckMissing indicates an index that has not been created.
	CheckMissing CheckResult = "missing"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

const engineCheck = "engine"

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	engine  Pinger
	indexes IndexChecker
	names   []string
}

// New creates a Service. indexes may be nil, in which case only the engine is pinged.
func New(engine Pinger, indexes IndexChecker, indexNames ...string) *Service {
	return &Service{engine: engine, indexes: indexes, names: indexNames}
}

// Check pings the engine and, when it answers, probes every configured index.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{engineCheck: CheckOK}

	if err := s.engine.Ping(ctx); err != nil {
		checks[engineCheck] = CheckError
		return Report{Status: Unhealthy, Checks: checks}
	}

	status := Healthy
	if s.indexes == nil {
		return Report{Status: status, Checks: checks}
	}
	for _, name := range s.names {
		exists, err := s.indexes.IndexExists(ctx, name)
		switch {
		case err != nil:
			checks[name] = CheckError
			status = Degraded
		case !exists:
			checks[name] = CheckMissing
			status = Degraded
		default:
			checks[name] = CheckOK
		}
	}
	return Report{Status: status, Checks: checks}
}
