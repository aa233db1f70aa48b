package survey

import (
	"context"

	domainsurvey "github.com/vivaha-cloud/vendex/internal/domain/survey"
)

// Store persists survey records. The NocoDB client in
// internal/transport/nocodb is the production implementation.
type Store interface {
	Create(ctx context.Context, rec domainsurvey.Record) error
	Get(ctx context.Context, id string) (domainsurvey.Record, error)
	List(ctx context.Context, limit int) ([]domainsurvey.Record, error)
}
