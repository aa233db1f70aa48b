package serper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

// Title separators used by business sites: "Name - City | Brand".
var titleSeparators = []string{" | ", " - ", " – ", " — ", ": "}

var (
	capacityRe = regexp.MustCompile(`(?i)\b(\d{2,5})\s*\+?\s*(?:guests|pax|people|seating|capacity)\b`)
	ratingRe   = regexp.MustCompile(`(?i)\b(\d(?:\.\d)?)\s*(?:stars?|/\s*5)|rated\s+(\d(?:\.\d)?)\b`)
	phoneRe    = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{4}[\s-]?\d{5}\b`)
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// toCandidate maps an organic search hit to a vendor candidate.
// Every extraction is best-effort; absent data stays zero-valued.
func toCandidate(hit organicHit) vendor.Candidate {
	rawText := strings.TrimSpace(hit.Title + " " + hit.Snippet)

	c := vendor.Candidate{
		Name:         businessName(hit.Title),
		RawText:      rawText,
		Location:     extractLocation(hit.Title, hit.Snippet),
		Website:      hit.Link,
		CapacityHint: extractCapacity(rawText),
		Rating:       hit.Rating,
		Description:  strings.TrimSpace(hit.Snippet),
	}

	if c.Rating == 0 {
		c.Rating = extractRating(rawText)
	}
	if phone := phoneRe.FindString(rawText); phone != "" {
		c.Contact.Phone = phone
	}
	if email := emailRe.FindString(rawText); email != "" {
		c.Contact.Email = email
	}
	c.Contact.Website = hit.Link

	return c
}

// businessName takes the first segment of a separator-joined title.
func businessName(title string) string {
	name := strings.TrimSpace(title)
	for _, sep := range titleSeparators {
		if head, _, found := strings.Cut(name, sep); found {
			name = strings.TrimSpace(head)
		}
	}
	return name
}

var locationInRe = regexp.MustCompile(`(?i)\b(?:in|at|near)\s+([A-Za-z][A-Za-z .]{2,40})$`)

// extractLocation pulls a free-text location from the title tail, falling
// back to the snippet. City matching downstream is substring-based, so a
// loose grab is fine.
func extractLocation(title, snippet string) string {
	if m := locationInRe.FindStringSubmatch(strings.TrimSpace(title)); m != nil {
		return strings.TrimSpace(m[1])
	}
	return snippet
}

func extractCapacity(text string) int {
	m := capacityRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func extractRating(text string) float64 {
	m := ratingRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		if r, err := strconv.ParseFloat(g, 64); err == nil && r <= 5 {
			return r
		}
	}
	return 0
}
