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

// Service coordinates health checks.
type Service struct {
	store StorePinger
	ic    ICPinger
}

// New creates a Service. ic can be nil when no IC source is configured.
func New(store StorePinger, ic ICPinger) *Service {
	return &Service{store: store, ic: ic}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.store.Ping(ctx); err != nil {
		checks["store"] = CheckError
	} else {
		checks["store"] = CheckOK
	}

	if s.ic != nil {
		if err := s.ic.Ping(ctx); err != nil {
			checks["ic_source"] = CheckError
		} else {
			checks["ic_source"] = CheckOK
		}
	}

	return Report{Status: aggregate(checks), Checks: checks}
}

func aggregate(checks map[string]CheckResult) Status {
	failed := 0
	for _, r := range checks {
		if r == CheckError {
			failed++
		}
	}
	switch {
	case failed == 0:
		return Healthy
	case failed == len(checks):
		return Unhealthy
	default:
		return Degraded
	}
}
