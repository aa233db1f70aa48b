package health

import "context"

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// SuggestionChecker checks AI suggestion provider availability.
type SuggestionChecker interface {
	HealthCheck(ctx context.Context) error
}
