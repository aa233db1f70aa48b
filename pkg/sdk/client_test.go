package vendex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, opts...)
}

func TestSearchVenues(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq SearchRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Success:    true,
			Venues:     []Venue{{Name: "Grand Heritage Palace", RelevanceScore: 65}},
			TotalFound: 1,
		})
	}, WithAPIKey("secret"))

	resp, err := client.SearchVenues(context.Background(), SearchRequest{City: "Mumbai", VenueType: "heritage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1/vendors/search" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotReq.City != "Mumbai" {
		t.Errorf("request city = %q", gotReq.City)
	}
	if len(resp.Venues) != 1 || resp.Venues[0].RelevanceScore != 65 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSearchVenues_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "validation_failed",
			"message": "city is required",
		})
	})

	_, err := client.SearchVenues(context.Background(), SearchRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Code != "validation_failed" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestSurveyRoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var s Survey
			_ = json.NewDecoder(r.Body).Decode(&s)
			s.ID = "abc-123"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "survey": s})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"survey":  Survey{ID: "abc-123", CoupleNames: "Asha & Rohan"},
			})
		}
	})

	created, err := client.CreateSurvey(context.Background(), Survey{CoupleNames: "Asha & Rohan", City: "Mumbai"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "abc-123" {
		t.Errorf("ID = %q", created.ID)
	}

	got, err := client.GetSurvey(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CoupleNames != "Asha & Rohan" {
		t.Errorf("survey = %+v", got)
	}
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(HealthReport{Status: "ok", Checks: map[string]string{"cache": "ok"}})
	})

	report, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != "ok" || report.Checks["cache"] != "ok" {
		t.Errorf("report = %+v", report)
	}
}
