// Package nocodb is a client for the NocoDB v2 table-records REST API,
// used as the survey store.
package nocodb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain"
	"github.com/vivaha-cloud/vendex/internal/domain/survey"
)

const defaultTimeout = 10 * time.Second

// Config holds the NocoDB connection settings.
type Config struct {
	BaseURL  string
	APIToken string
	// TableID is the NocoDB table holding survey records.
	TableID string
	Logger  *zap.Logger
}

// Client stores survey records in a NocoDB table.
// It implements the survey usecase Store interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	tableID    string
	logger     *zap.Logger
}

// NewClient creates a NocoDB survey store.
func NewClient(cfg *Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiToken:   cfg.APIToken,
		tableID:    cfg.TableID,
		logger:     cfg.Logger,
	}
}

// record is the NocoDB row shape. Column names follow the table schema,
// not the Go JSON contract.
type record struct {
	ID          string `json:"survey_id,omitempty"`
	CoupleNames string `json:"couple_names,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	WeddingDate string `json:"wedding_date,omitempty"`
	City        string `json:"city,omitempty"`
	VenueType   string `json:"venue_type,omitempty"`
	WeddingType string `json:"wedding_type,omitempty"`
	GuestCount  int    `json:"guest_count,omitempty"`
	BudgetRange string `json:"budget_range,omitempty"`
	Events      string `json:"events,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"submitted_at,omitempty"`
}

func toRecord(rec survey.Record) record {
	return record{
		ID:          rec.ID,
		CoupleNames: rec.CoupleNames,
		Email:       rec.Email,
		Phone:       rec.Phone,
		WeddingDate: rec.WeddingDate,
		City:        rec.City,
		VenueType:   rec.VenueType,
		WeddingType: rec.WeddingType,
		GuestCount:  rec.GuestCount,
		BudgetRange: rec.BudgetRange,
		Events:      strings.Join(rec.Events, ","),
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}

func fromRecord(r record) survey.Record {
	rec := survey.Record{
		ID:          r.ID,
		CoupleNames: r.CoupleNames,
		Email:       r.Email,
		Phone:       r.Phone,
		WeddingDate: r.WeddingDate,
		City:        r.City,
		VenueType:   r.VenueType,
		WeddingType: r.WeddingType,
		GuestCount:  r.GuestCount,
		BudgetRange: r.BudgetRange,
		Notes:       r.Notes,
	}
	if r.Events != "" {
		rec.Events = strings.Split(r.Events, ",")
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		rec.CreatedAt = t
	}
	return rec
}

func (c *Client) recordsURL() string {
	return fmt.Sprintf("%s/api/v2/tables/%s/records", c.baseURL, c.tableID)
}

// Create inserts one survey row.
func (c *Client) Create(ctx context.Context, rec survey.Record) error {
	body, err := json.Marshal(toRecord(rec))
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.recordsURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusError("create record", resp)
	}
	return nil
}

// Get fetches one survey by its assigned ID. NocoDB row IDs differ from
// ours, so lookup goes through a where filter on the survey_id column.
func (c *Client) Get(ctx context.Context, id string) (survey.Record, error) {
	q := url.Values{}
	q.Set("where", fmt.Sprintf("(survey_id,eq,%s)", id))
	q.Set("limit", "1")

	rows, err := c.list(ctx, q)
	if err != nil {
		return survey.Record{}, err
	}
	if len(rows) == 0 {
		return survey.Record{}, fmt.Errorf("survey %s: %w", id, domain.ErrNotFound)
	}
	return fromRecord(rows[0]), nil
}

// List returns the most recent surveys.
func (c *Client) List(ctx context.Context, limit int) ([]survey.Record, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("sort", "-submitted_at")

	rows, err := c.list(ctx, q)
	if err != nil {
		return nil, err
	}

	records := make([]survey.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, fromRecord(r))
	}
	return records, nil
}

type listResponse struct {
	List []record `json:"list"`
}

func (c *Client) list(ctx context.Context, q url.Values) ([]record, error) {
	resp, err := c.do(ctx, http.MethodGet, c.recordsURL()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("list records", resp)
	}

	var parsed listResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w: %w", err, domain.ErrSurveyStoreError)
	}
	return parsed.List, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("xc-token", c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nocodb request: %w: %w", err, domain.ErrSurveyStoreError)
	}
	return resp, nil
}

func (c *Client) statusError(op string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s: status %d: %s: %w",
		op, resp.StatusCode, string(data), domain.ErrSurveyStoreError)
}
