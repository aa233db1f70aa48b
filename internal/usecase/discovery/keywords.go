package discovery

import (
	"strings"

	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

// KeywordsVersion identifies the deployed keyword tables.
// Bump on any change; table edits are config changes, not logic changes.
const KeywordsVersion = 2

// weddingKeywords maps a lowercased wedding-type label to the cultural
// terms whose presence in a candidate's text counts as a match.
var weddingKeywords = map[string][]string{
	"traditional hindu": {"hindu", "vedic", "mandap", "pheras", "havan", "heritage"},
	"hindu":             {"hindu", "vedic", "mandap", "pheras", "havan", "heritage"},
	"muslim":            {"nikah", "walima", "muslim", "shaadi"},
	"nikah":             {"nikah", "walima", "muslim"},
	"christian":         {"christian", "church", "chapel", "cathedral"},
	"sikh":              {"sikh", "gurdwara", "anand karaj"},
	"south indian":      {"kalyana", "mandapam", "muhurtham", "temple"},
	"bengali":           {"bengali", "bengal"},
	"destination":       {"destination", "beach", "island", "waterfront"},
}

// venueTerms maps a venue category to the words that suggest it in a
// candidate's name or snippet text.
var venueTerms = map[preference.VenueType][]string{
	preference.Banquet:  {"banquet", "hall", "convention"},
	preference.Resort:   {"resort", "spa", "retreat"},
	preference.Heritage: {"heritage", "palace", "fort", "haveli", "mahal"},
	preference.Garden:   {"garden", "lawn", "farmhouse", "open air", "greens"},
	preference.Temple:   {"temple", "mandir", "mandapam", "kalyana"},
}

// matchesVenueType reports whether the candidate's inferred category
// matches the requested venue type. "all" always matches.
func matchesVenueType(c vendor.Candidate, vt preference.VenueType) bool {
	if vt == preference.All {
		return true
	}
	text := strings.ToLower(c.Name + " " + c.RawText)
	for _, term := range venueTerms[vt] {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// matchesWeddingType reports whether the candidate's text contains a
// cultural term associated with the wedding-type label. Unknown labels
// never match.
func matchesWeddingType(c vendor.Candidate, weddingType string) bool {
	terms := weddingTerms(weddingType)
	if len(terms) == 0 {
		return false
	}
	text := strings.ToLower(c.Name + " " + c.RawText)
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// weddingTerms resolves a wedding-type label to its keyword list.
// Falls back to substring matching so "Traditional Hindu Wedding" still
// resolves to the "traditional hindu" entry.
func weddingTerms(label string) []string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil
	}
	if terms, ok := weddingKeywords[label]; ok {
		return terms
	}
	for key, terms := range weddingKeywords {
		if strings.Contains(label, key) {
			return terms
		}
	}
	return nil
}
