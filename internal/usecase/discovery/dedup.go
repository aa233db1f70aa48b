package discovery

import (
	"strings"
	"unicode"

	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

// duplicateThreshold is the similarity above which two normalized names
// are treated as the same business. Exact normalized equality always counts.
const duplicateThreshold = 0.85

// NormalizeName lowercases a business name, strips punctuation,
// redundant whitespace, and a leading article, so "The Grand-Palace "
// and "grand palace" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	words := strings.Fields(b.String())
	if len(words) > 1 && words[0] == "the" {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// LevenshteinSimilarity implements Similarity as 1 - dist/len(longer),
// computed over runes.
type LevenshteinSimilarity struct{}

// Ratio returns the normalized edit-distance similarity of a and b.
func (LevenshteinSimilarity) Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longer)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// deduplicate collapses fuzzy name duplicates, retaining the entry with
// the higher relevance score (ties broken by contact score, then by
// original order). Survivors keep their first-seen slot.
func deduplicate(list []vendor.Scored, sim Similarity) []vendor.Scored {
	kept := make([]vendor.Scored, 0, len(list))
	names := make([]string, 0, len(list))

	for _, cand := range list {
		name := NormalizeName(cand.Name)
		dup := -1
		for i, known := range names {
			if known == name || sim.Ratio(known, name) >= duplicateThreshold {
				dup = i
				break
			}
		}
		if dup < 0 {
			kept = append(kept, cand)
			names = append(names, name)
			continue
		}
		if outranks(cand, kept[dup]) {
			kept[dup] = cand
			names[dup] = name
		}
	}
	return kept
}

func outranks(a, b vendor.Scored) bool {
	if a.RelevanceScore != b.RelevanceScore {
		return a.RelevanceScore > b.RelevanceScore
	}
	return a.ContactScore > b.ContactScore
}
