// Package suggestion turns a couple's preference context into themed
// venue, decor and ritual ideas via an AI completion provider.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain"
	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	"github.com/vivaha-cloud/vendex/internal/metrics"
)

// Idea is a single themed suggestion.
type Idea struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Service generates suggestions for a preference context.
// A nil generator means the feature is disabled.
type Service struct {
	gen      Generator
	provider string
	logger   *zap.Logger
}

// New creates a suggestion service. provider names the backing model
// family for metrics and health reporting ("openai", "gemini").
func New(gen Generator, provider string, logger *zap.Logger) *Service {
	return &Service{gen: gen, provider: provider, logger: logger}
}

// Enabled reports whether a generator is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.gen != nil
}

// Suggest generates ideas for the given preferences.
func (s *Service) Suggest(ctx context.Context, prefs preference.Context) ([]Idea, error) {
	if !s.Enabled() {
		return nil, domain.ErrSuggestionsDisabled
	}

	start := time.Now()
	raw, err := s.gen.Generate(ctx, buildPrompt(prefs))
	metrics.SuggestionRequestDuration.WithLabelValues(s.provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SuggestionRequestsTotal.WithLabelValues(s.provider, "error").Inc()
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	ideas, err := parseIdeas(raw)
	if err != nil {
		metrics.SuggestionRequestsTotal.WithLabelValues(s.provider, "error").Inc()
		s.logger.Warn("unparseable suggestion response",
			zap.String("provider", s.provider), zap.Error(err))
		return nil, fmt.Errorf("parse suggestions: %w: %w", err, domain.ErrSuggestionProviderError)
	}

	metrics.SuggestionRequestsTotal.WithLabelValues(s.provider, "success").Inc()
	s.logger.Info("suggestions generated",
		zap.String("provider", s.provider),
		zap.String("city", prefs.City()),
		zap.Int("count", len(ideas)))
	return ideas, nil
}

func buildPrompt(prefs preference.Context) string {
	var b strings.Builder
	b.WriteString("You are a wedding planning assistant for Indian weddings. ")
	fmt.Fprintf(&b, "Suggest ideas for a %s wedding in %s for about %d guests",
		orAny(prefs.WeddingType()), prefs.City(), prefs.GuestCount())
	if prefs.VenueType() != preference.All {
		fmt.Fprintf(&b, ", venue type %s", prefs.VenueType())
	}
	if prefs.BudgetRange() != "" {
		fmt.Fprintf(&b, ", budget %s", prefs.BudgetRange())
	}
	b.WriteString(". Respond with ONLY a JSON array of objects, each with ")
	b.WriteString(`"title", "category" (one of venue, decor, ritual, cuisine) and "description" fields. `)
	b.WriteString("Return 5 to 8 ideas and no other text.")
	return b.String()
}

func orAny(weddingType string) string {
	if weddingType == "" {
		return "traditional"
	}
	return weddingType
}

// parseIdeas tolerates markdown fences and prose around the JSON array,
// which chat models emit despite instructions.
func parseIdeas(raw string) ([]Idea, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var ideas []Idea
	if err := json.Unmarshal([]byte(text[start:end+1]), &ideas); err != nil {
		return nil, fmt.Errorf("unmarshal ideas: %w", err)
	}
	if len(ideas) == 0 {
		return nil, fmt.Errorf("empty suggestion list")
	}
	return ideas, nil
}
