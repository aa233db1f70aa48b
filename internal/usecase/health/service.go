package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks. Both dependencies are optional:
// discovery itself never needs the cache or the AI provider to serve
// a request, so the service stays up without them.
type Service struct {
	cache      CachePinger
	suggestion SuggestionChecker
}

// New creates a Service. cache and suggestion can be nil.
func New(cache CachePinger, suggestion SuggestionChecker) *Service {
	return &Service{cache: cache, suggestion: suggestion}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	if s.suggestion != nil {
		if err := s.suggestion.HealthCheck(ctx); err != nil {
			checks["suggestion"] = CheckError
		} else {
			checks["suggestion"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
