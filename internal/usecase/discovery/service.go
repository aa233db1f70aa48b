// Package discovery implements vendor discovery: upstream web search,
// contact enrichment, and the fusion scoring pipeline that turns raw
// search hits into a ranked, deduplicated vendor list.
package discovery

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
	"github.com/vivaha-cloud/vendex/internal/metrics"
)

// DefaultMaxResults bounds the fused result set.
const DefaultMaxResults = 10

// Service orchestrates one discovery request. The scoring pipeline
// itself (Fuse) is pure; all I/O happens before it.
type Service struct {
	provider   SearchProvider
	enricher   ContactEnricher
	sim        Similarity
	rules      []Rule
	fallback   []vendor.Scored
	maxResults int
	logger     *zap.Logger
}

// New creates a discovery service with the default rule table, fuzzy
// matcher, and fallback dataset. provider may be nil (fallback only).
func New(provider SearchProvider, logger *zap.Logger) *Service {
	return &Service{
		provider:   provider,
		sim:        LevenshteinSimilarity{},
		rules:      CollectionPageRules(),
		fallback:   DefaultFallbackVendors(),
		maxResults: DefaultMaxResults,
		logger:     logger,
	}
}

// WithEnricher enables phone backfill from candidate websites.
func (s *Service) WithEnricher(e ContactEnricher) *Service {
	s.enricher = e
	return s
}

// WithMaxResults overrides the result set size.
func (s *Service) WithMaxResults(n int) *Service {
	if n > 0 {
		s.maxResults = n
	}
	return s
}

// WithSimilarity swaps the fuzzy name matcher.
func (s *Service) WithSimilarity(sim Similarity) *Service {
	s.sim = sim
	return s
}

// WithFallback replaces the injected fallback dataset.
func (s *Service) WithFallback(fallback []vendor.Scored) *Service {
	s.fallback = fallback
	return s
}

// Result is the outcome of one discovery request.
type Result struct {
	Vendors []vendor.Scored
	// TotalFound is the raw upstream candidate count, before filtering.
	TotalFound int
	// Fallback is true when the static dataset was served.
	Fallback bool
}

// Discover searches, enriches, and fuses vendors for a preference
// context. Upstream failure degrades to the fallback dataset; this
// method never returns an error.
func (s *Service) Discover(ctx context.Context, prefs preference.Context) Result {
	query := buildQuery(prefs)

	var candidates []vendor.Candidate
	if s.provider != nil {
		var err error
		candidates, err = s.provider.Search(ctx, query)
		if err != nil {
			s.logger.Warn("upstream search failed, serving fallback",
				zap.String("query", query),
				zap.Error(err),
			)
			candidates = nil
		}
	}

	s.enrichContacts(ctx, candidates)

	fused := s.Fuse(candidates, prefs)

	source := vendor.SourceSearch
	fallback := len(fused) > 0 && fused[0].Source == vendor.SourceFallback
	if fallback {
		source = vendor.SourceFallback
	}
	metrics.DiscoveryRequestsTotal.WithLabelValues(source).Inc()

	s.logger.Info("discovery completed",
		zap.String("city", prefs.City()),
		zap.String("venue_type", string(prefs.VenueType())),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(fused)),
		zap.Bool("fallback", fallback),
	)

	return Result{Vendors: fused, TotalFound: len(candidates), Fallback: fallback}
}

// buildQuery renders the upstream search query for a preference context.
func buildQuery(prefs preference.Context) string {
	parts := make([]string, 0, 4)
	if vt := prefs.VenueType(); vt != preference.All {
		parts = append(parts, string(vt))
	}
	parts = append(parts, "wedding venues in", prefs.City())
	if wt := prefs.WeddingType(); wt != "" {
		parts = append(parts, "for "+strings.ToLower(wt)+" wedding")
	}
	return strings.Join(parts, " ")
}

// enrichContacts backfills missing phones from candidate websites.
// Extraction failure leaves the candidate unchanged.
func (s *Service) enrichContacts(ctx context.Context, candidates []vendor.Candidate) {
	if s.enricher == nil {
		return
	}
	for i := range candidates {
		c := &candidates[i]
		if hasValidPhone(c.Contact.Phone) {
			continue
		}
		site := websiteOf(*c)
		if !hasValidWebsite(site) {
			continue
		}
		if phone, ok := s.enricher.ExtractPhone(ctx, site); ok {
			c.Contact.Phone = phone
		}
	}
}
