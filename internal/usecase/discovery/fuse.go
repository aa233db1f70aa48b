package discovery

import (
	"sort"

	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
	"github.com/vivaha-cloud/vendex/internal/metrics"
)

// Fuse runs the scoring pipeline over raw candidates:
// filter collection pages, score, deduplicate, sort, truncate.
// When nothing survives, the injected fallback dataset is returned.
//
// Fuse holds no state between calls and is safe for concurrent use.
func (s *Service) Fuse(candidates []vendor.Candidate, prefs preference.Context) []vendor.Scored {
	scored := make([]vendor.Scored, 0, len(candidates))
	for _, c := range candidates {
		if rule, ok := collectionPageRule(s.rules, c); ok {
			metrics.DiscoveryCandidatesFilteredTotal.WithLabelValues(rule).Inc()
			continue
		}
		sv := vendor.Scored{Candidate: c, Source: vendor.SourceSearch}
		sv.ContactScore = computeContactScore(c)
		sv.RelevanceScore = computeRelevanceScore(c, prefs, sv.ContactScore)
		scored = append(scored, sv)
	}

	scored = deduplicate(scored, s.sim)

	// Stable: ties keep the original upstream search order.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].RelevanceScore != scored[j].RelevanceScore {
			return scored[i].RelevanceScore > scored[j].RelevanceScore
		}
		return scored[i].ContactScore > scored[j].ContactScore
	})

	if len(scored) > s.maxResults {
		scored = scored[:s.maxResults]
	}

	if len(scored) == 0 {
		return s.fallbackCopy()
	}
	return scored
}

// fallbackCopy returns a fresh slice so callers cannot mutate the
// injected dataset.
func (s *Service) fallbackCopy() []vendor.Scored {
	out := make([]vendor.Scored, len(s.fallback))
	copy(out, s.fallback)
	return out
}
