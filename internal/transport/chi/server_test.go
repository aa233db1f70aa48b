package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain"
	domainsurvey "github.com/vivaha-cloud/vendex/internal/domain/survey"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
	discoveryuc "github.com/vivaha-cloud/vendex/internal/usecase/discovery"
	healthuc "github.com/vivaha-cloud/vendex/internal/usecase/health"
	suggestionuc "github.com/vivaha-cloud/vendex/internal/usecase/suggestion"
	surveyuc "github.com/vivaha-cloud/vendex/internal/usecase/survey"
)

type stubProvider struct {
	candidates []vendor.Candidate
	err        error
}

func (s *stubProvider) Search(_ context.Context, _ string) ([]vendor.Candidate, error) {
	return s.candidates, s.err
}

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

type memSurveyStore struct {
	records map[string]domainsurvey.Record
}

func newMemSurveyStore() *memSurveyStore {
	return &memSurveyStore{records: map[string]domainsurvey.Record{}}
}

func (m *memSurveyStore) Create(_ context.Context, rec domainsurvey.Record) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *memSurveyStore) Get(_ context.Context, id string) (domainsurvey.Record, error) {
	rec, ok := m.records[id]
	if !ok {
		return domainsurvey.Record{}, domain.ErrNotFound
	}
	return rec, nil
}

func (m *memSurveyStore) List(_ context.Context, _ int) ([]domainsurvey.Record, error) {
	out := make([]domainsurvey.Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func newTestServer(provider discoveryuc.SearchProvider, gen suggestionuc.Generator) *Server {
	logger := zap.NewNop()
	disc := discoveryuc.New(provider, logger)
	sugg := suggestionuc.New(gen, "openai", logger)
	surv := surveyuc.New(newMemSurveyStore(), logger)
	srv := NewServer(disc, sugg, surv, healthuc.New(nil, nil), logger)
	srv.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return srv
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSearchVendors_ContractShape(t *testing.T) {
	provider := &stubProvider{candidates: []vendor.Candidate{{
		Name:     "Grand Heritage Palace",
		RawText:  "Grand Heritage Palace heritage wedding venue in Mumbai, award winning",
		Location: "Mumbai",
		Website:  "https://ghp.in",
		Contact: vendor.Contact{
			Phone: "+91 98765 43210",
			Email: "events@ghp.in",
		},
		CapacityHint: 800,
		Rating:       4.6,
	}}}
	srv := newTestServer(provider, nil)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/vendors/search",
		`{"city":"Mumbai","venue_type":"heritage","guest_count":750,"wedding_type":"traditional hindu"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp searchVendorsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("success should be true")
	}
	if resp.TotalFound != 1 || len(resp.Venues) != 1 {
		t.Fatalf("total_found = %d venues = %d", resp.TotalFound, len(resp.Venues))
	}
	if resp.AIEnabled {
		t.Error("ai_enabled should be false without a generator")
	}
	if resp.Timestamp != "2026-03-14T10:00:00Z" {
		t.Errorf("timestamp = %q", resp.Timestamp)
	}

	v := resp.Venues[0]
	if v.Name != "Grand Heritage Palace" || v.Type != "heritage" || v.Capacity != 800 {
		t.Errorf("venue = %+v", v)
	}
	if v.Source != vendor.SourceSearch {
		t.Errorf("source = %q, want %q", v.Source, vendor.SourceSearch)
	}
	if v.RelevanceScore <= 0 {
		t.Error("relevanceScore should be positive for a matching venue")
	}
	if v.Contact.Phone == "" || v.Contact.Email == "" {
		t.Errorf("contact = %+v", v.Contact)
	}
}

func TestSearchVendors_MissingCity(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/vendors/search", `{"venue_type":"banquet"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != CodeValidationFailed {
		t.Errorf("code = %q", errResp.Code)
	}
}

func TestSearchVendors_InvalidBody(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/vendors/search", `{broken`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestSearchVendors_ProviderDownServesFallback(t *testing.T) {
	provider := &stubProvider{err: domain.ErrSearchProviderError}
	srv := newTestServer(provider, nil)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/vendors/search", `{"city":"Mumbai"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: discovery must never fail the request", rr.Code)
	}

	var resp searchVendorsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Venues) == 0 {
		t.Fatal("fallback venues expected")
	}
	for _, v := range resp.Venues {
		if v.Source != vendor.SourceFallback {
			t.Errorf("source = %q, want %q", v.Source, vendor.SourceFallback)
		}
	}
}

func TestCreateSuggestions(t *testing.T) {
	gen := &stubGenerator{response: `[{"title":"Mandap","category":"decor","description":"d"}]`}
	srv := newTestServer(&stubProvider{}, gen)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/suggestions", `{"city":"Jaipur","wedding_type":"sikh"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp suggestionsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || len(resp.Suggestions) != 1 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateSuggestions_Disabled(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/suggestions", `{"city":"Jaipur"}`)
	if rr.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", rr.Code)
	}
}

func TestCreateSuggestions_ProviderError(t *testing.T) {
	gen := &stubGenerator{response: "no json here"}
	srv := newTestServer(&stubProvider{}, gen)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/suggestions", `{"city":"Jaipur"}`)
	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rr.Code)
	}
}

func TestSurveyLifecycle(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)
	routes := srv.Routes()

	rr := doJSON(t, routes, "POST", "/api/v1/surveys",
		`{"couple_names":"Asha & Rohan","email":"asha@example.com","city":"Mumbai"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var created surveyResponse
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Survey.ID == "" {
		t.Fatal("expected assigned survey ID")
	}

	rr = doJSON(t, routes, "GET", "/api/v1/surveys/"+created.Survey.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d", rr.Code)
	}

	rr = doJSON(t, routes, "GET", "/api/v1/surveys", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	var listed surveyListResponse
	if err := json.NewDecoder(rr.Body).Decode(&listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listed.Total != 1 {
		t.Errorf("total = %d, want 1", listed.Total)
	}
}

func TestCreateSurvey_Validation(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)

	rr := doJSON(t, srv.Routes(), "POST", "/api/v1/surveys", `{"city":"Mumbai"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestGetSurvey_NotFound(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)

	rr := doJSON(t, srv.Routes(), "GET", "/api/v1/surveys/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(&stubProvider{}, nil)

	rr := doJSON(t, srv.Routes(), "GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var resp healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != string(healthuc.Healthy) {
		t.Errorf("status = %q", resp.Status)
	}
}
