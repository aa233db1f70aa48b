package discovery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

// Relevance score weights. The maximum attainable total is 70; the score
// orders results relative to each other and is never normalized to 100.
const (
	cityPoints        = 20
	venueTypePoints   = 15
	capacityPoints    = 15
	weddingTypePoints = 10
	qualityPoints     = 5
	contactablePoints = 5

	// capacityTolerance is the allowed |capacity hint - guest count| gap.
	capacityTolerance = 100
)

// Contact scoring: 4 channels, each worth an equal share of 100.
const (
	contactChannels  = 4
	pointsPerChannel = 100 / contactChannels
)

// computeContactScore counts present, well-formed contact channels and
// normalizes to 0-100. Malformed fields score as absent.
func computeContactScore(c vendor.Candidate) int {
	n := 0
	if hasValidPhone(c.Contact.Phone) {
		n++
	}
	if hasValidEmail(c.Contact.Email) {
		n++
	}
	if hasValidWebsite(websiteOf(c)) {
		n++
	}
	if hasWhatsapp(c.Contact) {
		n++
	}
	return n * pointsPerChannel
}

// computeRelevanceScore accumulates weighted match contributions against
// the preference context. Ties are resolved later by a stable sort, so
// the original upstream order survives equal scores.
func computeRelevanceScore(c vendor.Candidate, prefs preference.Context, contactScore int) int {
	score := 0
	if prefs.City() != "" && containsFold(c.Location, prefs.City()) {
		score += cityPoints
	}
	if matchesVenueType(c, prefs.VenueType()) {
		score += venueTypePoints
	}
	if matchesWeddingType(c, prefs.WeddingType()) {
		score += weddingTypePoints
	}
	if c.CapacityHint > 0 && abs(c.CapacityHint-prefs.GuestCount()) < capacityTolerance {
		score += capacityPoints
	}
	if hasQualityMarker(c) {
		score += qualityPoints
	}
	if contactScore > 0 {
		score += contactablePoints
	}
	return score
}

// websiteOf prefers the structured contact website over the search hit link.
func websiteOf(c vendor.Candidate) string {
	if c.Contact.Website != "" {
		return c.Contact.Website
	}
	return c.Website
}

var phoneStripRe = regexp.MustCompile(`[\s\-().]`)

// hasValidPhone applies a digit-count and prefix heuristic: an optional
// leading +, then 8-15 digits.
func hasValidPhone(p string) bool {
	p = phoneStripRe.ReplaceAllString(p, "")
	p = strings.TrimPrefix(p, "+")
	if len(p) < 8 || len(p) > 15 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasValidEmail(e string) bool {
	local, domain, ok := strings.Cut(e, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func hasValidWebsite(site string) bool {
	if site == "" {
		return false
	}
	if !strings.Contains(site, "://") {
		site = "https://" + site
	}
	u, err := url.Parse(site)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && strings.Contains(u.Host, ".")
}

// hasWhatsapp requires an explicit WhatsApp number in valid phone
// format. A bare phone is not assumed to be reachable on WhatsApp, so a
// phone-only candidate scores one channel, not two.
func hasWhatsapp(c vendor.Contact) bool {
	return c.Whatsapp != "" && hasValidPhone(c.Whatsapp)
}

var ratingMentionRe = regexp.MustCompile(`(?i)\b\d(?:\.\d)?\s*(?:stars?|/\s*5)|\brated\b`)

// hasQualityMarker checks for rating mentions, awards, or featured tags.
func hasQualityMarker(c vendor.Candidate) bool {
	if c.Rating > 0 {
		return true
	}
	text := strings.ToLower(c.RawText)
	return ratingMentionRe.MatchString(c.RawText) ||
		strings.Contains(text, "award") ||
		strings.Contains(text, "featured")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
