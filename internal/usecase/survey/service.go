// Package survey validates and persists wedding preference surveys.
package survey

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain"
	domainsurvey "github.com/vivaha-cloud/vendex/internal/domain/survey"
)

const defaultListLimit = 50

// Service handles survey submission and retrieval.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// New creates a survey service.
func New(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// WithClock overrides the clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit validates the record, assigns an ID and a creation timestamp,
// and stores it. The stored record is returned.
func (s *Service) Submit(ctx context.Context, rec domainsurvey.Record) (domainsurvey.Record, error) {
	if err := validate(rec); err != nil {
		return domainsurvey.Record{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = s.now().UTC()

	if err := s.store.Create(ctx, rec); err != nil {
		return domainsurvey.Record{}, fmt.Errorf("store survey: %w: %w", err, domain.ErrSurveyStoreError)
	}

	s.logger.Info("survey stored",
		zap.String("survey_id", rec.ID),
		zap.String("city", rec.City))
	return rec, nil
}

// Get returns a stored survey by ID.
func (s *Service) Get(ctx context.Context, id string) (domainsurvey.Record, error) {
	if strings.TrimSpace(id) == "" {
		return domainsurvey.Record{}, fmt.Errorf("%w: survey id is required", domain.ErrValidation)
	}
	return s.store.Get(ctx, id)
}

// List returns the most recent surveys, capped at limit (default 50).
func (s *Service) List(ctx context.Context, limit int) ([]domainsurvey.Record, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.store.List(ctx, limit)
}

func validate(rec domainsurvey.Record) error {
	if strings.TrimSpace(rec.CoupleNames) == "" {
		return fmt.Errorf("couple_names is required")
	}
	if strings.TrimSpace(rec.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(rec.Email) == "" && strings.TrimSpace(rec.Phone) == "" {
		return fmt.Errorf("email or phone is required")
	}
	if rec.GuestCount < 0 {
		return fmt.Errorf("guest_count must not be negative")
	}
	return nil
}
