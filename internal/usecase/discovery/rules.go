package discovery

import (
	"regexp"
	"strings"

	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

// RulesVersion identifies the deployed collection-page rule table.
// Bump on any change to the table; rule edits are config changes, not logic changes.
const RulesVersion = 3

// Rule is a single collection-page heuristic. A candidate matching any
// rule is classified as a directory/listicle page and dropped. Rules are
// heuristics: false positives and negatives are an accepted trade-off.
type Rule struct {
	Name  string
	Match func(name, rawText string) bool
}

// leadingWindow bounds how far into the raw text a phrase still counts
// as "title-like position" rather than body copy.
const leadingWindow = 80

var (
	listiclePrefixRe = regexp.MustCompile(`^(?:the\s+)?(?:\d+\s+)?(?:top|best|list of)\b`)
	genericVenuesRe  = regexp.MustCompile(`^(?:wedding|marriage|banquet)?\s*(?:halls?|venues?|services)\s+(?:in|near|at)\b`)
)

// CollectionPageRules returns the default rule table.
func CollectionPageRules() []Rule {
	return []Rule{
		{
			Name: "listicle_prefix",
			Match: func(name, rawText string) bool {
				return listiclePrefixRe.MatchString(name) || listiclePrefixRe.MatchString(leading(rawText))
			},
		},
		{
			Name: "directory_term",
			Match: func(name, rawText string) bool {
				for _, term := range []string{"directory", "listing", "near me"} {
					if strings.Contains(name, term) || strings.Contains(leading(rawText), term) {
						return true
					}
				}
				return false
			},
		},
		{
			Name: "generic_venues",
			Match: func(name, _ string) bool {
				return genericVenuesRe.MatchString(name)
			},
		},
		{
			Name: "bare_location",
			Match: func(name, _ string) bool {
				words := strings.Fields(name)
				if len(words) == 0 || len(words) > 3 {
					return false
				}
				for _, w := range words {
					if businessTerms[w] {
						return false
					}
				}
				return true
			},
		},
	}
}

// businessTerms are words that mark a name as a single bookable business.
// A short name without any of them reads like a bare city or area name.
var businessTerms = map[string]bool{
	"palace": true, "mahal": true, "haveli": true, "fort": true, "heritage": true,
	"resort": true, "hotel": true, "regency": true, "residency": true, "retreat": true,
	"garden": true, "gardens": true, "lawn": true, "lawns": true, "farm": true,
	"farms": true, "farmhouse": true, "vatika": true, "bagh": true, "greens": true,
	"banquet": true, "banquets": true, "hall": true, "halls": true, "convention": true,
	"mandapam": true, "kalyana": true, "temple": true, "mandir": true, "church": true,
	"club": true, "villa": true, "manor": true, "palms": true, "grand": true,
	"caterers": true, "decorators": true, "events": true, "celebrations": true,
	"studio": true, "photography": true,
}

// collectionPageRule returns the first matching rule name, if any.
// Matching is case-insensitive on both name and raw text.
func collectionPageRule(rules []Rule, c vendor.Candidate) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(c.Name))
	rawText := strings.ToLower(c.RawText)
	for _, r := range rules {
		if r.Match(name, rawText) {
			return r.Name, true
		}
	}
	return "", false
}

func leading(s string) string {
	if len(s) > leadingWindow {
		return s[:leadingWindow]
	}
	return s
}
