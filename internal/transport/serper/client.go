// Package serper is a client for the Serper.dev Google-search JSON API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vivaha-cloud/vendex/internal/domain"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
	"github.com/vivaha-cloud/vendex/internal/metrics"
)

const (
	defaultBaseURL     = "https://google.serper.dev"
	defaultResultCount = 20
	defaultTimeout     = 10 * time.Second
	providerName       = "serper"
)

// Config holds the search provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	// Country code passed as "gl" (default "in").
	Country string
	// ResultCount is the number of organic hits requested per query.
	ResultCount int
	// RequestsPerSecond throttles outgoing calls (0 = unlimited).
	RequestsPerSecond float64
	Logger            *zap.Logger
}

// Client queries Serper and maps organic hits to vendor candidates.
// A circuit breaker shields the upstream; an open breaker surfaces as a
// provider error, which the discovery layer degrades to fallback data.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	country    string
	count      int
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a Serper client.
func NewClient(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	country := cfg.Country
	if country == "" {
		country = "in"
	}
	count := cfg.ResultCount
	if count <= 0 {
		count = defaultResultCount
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    providerName,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		country:    country,
		count:      count,
		breaker:    breaker,
		limiter:    limiter,
		logger:     cfg.Logger,
	}
}

type searchRequest struct {
	Q   string `json:"q"`
	GL  string `json:"gl,omitempty"`
	Num int    `json:"num,omitempty"`
}

type searchResponse struct {
	Organic []organicHit `json:"organic"`
}

type organicHit struct {
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Link    string  `json:"link"`
	Rating  float64 `json:"rating,omitempty"`
}

// Search implements discovery.SearchProvider.
func (c *Client) Search(ctx context.Context, query string) ([]vendor.Candidate, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.search(ctx, query)
	})
	if err != nil {
		metrics.SearchProviderRequestsTotal.WithLabelValues(providerName, "error").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("circuit open: %w", domain.ErrSearchProviderError)
		}
		return nil, err
	}

	metrics.SearchProviderRequestsTotal.WithLabelValues(providerName, "success").Inc()
	return result.([]vendor.Candidate), nil
}

func (c *Client) search(ctx context.Context, query string) ([]vendor.Candidate, error) {
	body, err := json.Marshal(searchRequest{Q: query, GL: c.country, Num: c.count})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w: %w", err, domain.ErrSearchProviderError)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("search API throttled: %w", domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search API status %d: %s: %w",
			resp.StatusCode, string(data), domain.ErrSearchProviderError)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w: %w", err, domain.ErrSearchProviderError)
	}

	candidates := make([]vendor.Candidate, 0, len(parsed.Organic))
	for _, hit := range parsed.Organic {
		candidates = append(candidates, toCandidate(hit))
	}
	return candidates, nil
}
