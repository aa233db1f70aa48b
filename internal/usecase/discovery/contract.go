package discovery

import (
	"context"

	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

// SearchProvider runs an upstream web search and maps hits to candidates.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]vendor.Candidate, error)
}

// ContactEnricher extracts a phone number from a vendor website.
// Best-effort: ok=false means nothing usable was found, never an error.
type ContactEnricher interface {
	ExtractPhone(ctx context.Context, websiteURL string) (phone string, ok bool)
}

// Similarity compares two normalized business names.
// Ratio returns a value in [0,1]; 1 means identical.
type Similarity interface {
	Ratio(a, b string) float64
}
