// Package enrich extracts contact details from vendor websites.
package enrich

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 5 * time.Second
	// maxBodyBytes caps how much of a vendor page we parse.
	maxBodyBytes = 256 << 10
)

var bodyPhoneRe = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{4}[\s-]?\d{5}\b`)

// Extractor fetches a vendor website and pulls a phone number out of it.
// It implements discovery.ContactEnricher.
type Extractor struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewExtractor creates a website contact extractor.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// WithHTTPClient overrides the HTTP client, mainly for tests.
func (e *Extractor) WithHTTPClient(client *http.Client) *Extractor {
	e.httpClient = client
	return e
}

// ExtractPhone fetches the page and returns the first phone number found,
// preferring tel: links over free text. Failures return ok=false; enrichment
// is strictly best-effort and never blocks discovery.
func (e *Extractor) ExtractPhone(ctx context.Context, websiteURL string) (string, bool) {
	doc, ok := e.fetch(ctx, websiteURL)
	if !ok {
		return "", false
	}

	if phone, ok := phoneFromTelLinks(doc); ok {
		return phone, true
	}

	text := doc.Find("body").Text()
	if phone := bodyPhoneRe.FindString(text); phone != "" {
		return strings.TrimSpace(phone), true
	}
	return "", false
}

func (e *Extractor) fetch(ctx context.Context, websiteURL string) (*goquery.Document, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, websiteURL, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", "vendex/1.0 (+https://github.com/vivaha-cloud/vendex)")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Debug("enrichment fetch failed", zap.String("url", websiteURL), zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.logger.Debug("enrichment fetch non-200",
			zap.String("url", websiteURL), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		e.logger.Debug("enrichment parse failed", zap.String("url", websiteURL), zap.Error(err))
		return nil, false
	}
	return doc, true
}

func phoneFromTelLinks(doc *goquery.Document) (string, bool) {
	var phone string
	doc.Find(`a[href^="tel:"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		raw := strings.TrimPrefix(href, "tel:")
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
		raw = strings.TrimSpace(raw)
		if raw != "" {
			phone = raw
			return false
		}
		return true
	})
	return phone, phone != ""
}
