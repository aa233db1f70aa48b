package vendex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the vendex SDK entry point.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a vendex API client.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.apiKey,
		httpClient: httpClient,
	}
}

// SearchVenues runs a ranked venue discovery request.
func (c *Client) SearchVenues(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	var resp SearchResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/vendors/search", req, &resp)
	return resp, err
}

// Suggest generates AI wedding suggestions for the given preferences.
func (c *Client) Suggest(ctx context.Context, req SearchRequest) (SuggestionsResponse, error) {
	var resp SuggestionsResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/suggestions", req, &resp)
	return resp, err
}

// CreateSurvey submits a preference survey and returns the stored record.
func (c *Client) CreateSurvey(ctx context.Context, survey Survey) (Survey, error) {
	var resp struct {
		Survey Survey `json:"survey"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/surveys", survey, &resp)
	return resp.Survey, err
}

// GetSurvey fetches a stored survey by ID.
func (c *Client) GetSurvey(ctx context.Context, id string) (Survey, error) {
	var resp struct {
		Survey Survey `json:"survey"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/surveys/"+id, nil, &resp)
	return resp.Survey, err
}

// Health fetches the service health report.
func (c *Client) Health(ctx context.Context) (HealthReport, error) {
	var resp HealthReport
	err := c.do(ctx, http.MethodGet, "/health", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "unknown", Message: resp.Status}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
