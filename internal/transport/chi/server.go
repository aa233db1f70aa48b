// Package chi implements the HTTP API on the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vivaha-cloud/vendex/internal/domain"
	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	domainsurvey "github.com/vivaha-cloud/vendex/internal/domain/survey"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
	discoveryuc "github.com/vivaha-cloud/vendex/internal/usecase/discovery"
	healthuc "github.com/vivaha-cloud/vendex/internal/usecase/health"
	suggestionuc "github.com/vivaha-cloud/vendex/internal/usecase/suggestion"
	surveyuc "github.com/vivaha-cloud/vendex/internal/usecase/survey"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the discovery, suggestion and survey usecases over HTTP.
type Server struct {
	discovery     *discoveryuc.Service
	suggestions   *suggestionuc.Service
	surveys       *surveyuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	now           func() time.Time
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. suggestions and surveys can be nil
// when the corresponding backends are not configured.
func NewServer(
	discovery *discoveryuc.Service,
	suggestions *suggestionuc.Service,
	surveys *surveyuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		discovery:   discovery,
		suggestions: suggestions,
		surveys:     surveys,
		health:      health,
		logger:      logger,
		now:         time.Now,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited),
		sentinelHandler(domain.ErrSuggestionsDisabled, http.StatusNotImplemented, CodeSuggestionsDisabled),
		sentinelHandler(domain.ErrSuggestionProviderError, http.StatusBadGateway, CodeSuggestionError),
		sentinelHandler(domain.ErrSearchProviderError, http.StatusBadGateway, CodeSearchProviderError),
		sentinelHandler(domain.ErrSurveyStoreError, http.StatusBadGateway, CodeSurveyStoreError),
	}
	return s
}

// Routes mounts all API endpoints on a chi router.
func (s *Server) Routes(middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chirouter.NewRouter()
	r.Use(middlewares...)

	r.Route("/api/v1", func(r chirouter.Router) {
		r.Post("/vendors/search", s.SearchVendors)
		r.Post("/suggestions", s.CreateSuggestions)
		r.Post("/surveys", s.CreateSurvey)
		r.Get("/surveys", s.ListSurveys)
		r.Get("/surveys/{id}", s.GetSurvey)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	return r
}

// --- Vendor search ---

type searchVendorsRequest struct {
	City        string `json:"city"`
	VenueType   string `json:"venue_type"`
	GuestCount  int    `json:"guest_count"`
	BudgetRange string `json:"budget_range"`
	WeddingType string `json:"wedding_type"`
}

type contactPayload struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type venuePayload struct {
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Type           string         `json:"type"`
	Capacity       int            `json:"capacity"`
	Rating         float64        `json:"rating"`
	PriceRange     string         `json:"priceRange"`
	Amenities      []string       `json:"amenities"`
	Description    string         `json:"description"`
	Contact        contactPayload `json:"contact"`
	Website        string         `json:"website"`
	Source         string         `json:"source"`
	RelevanceScore int            `json:"relevanceScore"`
}

type searchVendorsResponse struct {
	Success    bool           `json:"success"`
	Venues     []venuePayload `json:"venues"`
	TotalFound int            `json:"total_found"`
	AIEnabled  bool           `json:"ai_enabled"`
	Timestamp  string         `json:"timestamp"`
}

// SearchVendors handles POST /api/v1/vendors/search.
func (s *Server) SearchVendors(w http.ResponseWriter, r *http.Request) {
	var req searchVendorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	prefs, err := preference.New(
		req.City, preference.VenueType(req.VenueType), req.WeddingType, req.GuestCount, req.BudgetRange)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	result := s.discovery.Discover(r.Context(), prefs)

	venues := make([]venuePayload, len(result.Vendors))
	for i := range result.Vendors {
		venues[i] = venueToPayload(&result.Vendors[i], prefs.VenueType())
	}

	writeJSON(w, http.StatusOK, searchVendorsResponse{
		Success:    true,
		Venues:     venues,
		TotalFound: result.TotalFound,
		AIEnabled:  s.suggestions.Enabled(),
		Timestamp:  s.now().UTC().Format(time.RFC3339),
	})
}

func venueToPayload(v *vendor.Scored, requested preference.VenueType) venuePayload {
	website := v.Contact.Website
	if website == "" {
		website = v.Website
	}
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return venuePayload{
		Name:           v.Name,
		Location:       v.Location,
		Type:           string(requested),
		Capacity:       v.CapacityHint,
		Rating:         v.Rating,
		PriceRange:     v.PriceRange,
		Amenities:      amenities,
		Description:    v.Description,
		Contact:        contactPayload{Phone: v.Contact.Phone, Email: v.Contact.Email},
		Website:        website,
		Source:         v.Source,
		RelevanceScore: v.RelevanceScore,
	}
}

// --- Suggestions ---

type suggestionsRequest struct {
	City        string `json:"city"`
	VenueType   string `json:"venue_type"`
	GuestCount  int    `json:"guest_count"`
	BudgetRange string `json:"budget_range"`
	WeddingType string `json:"wedding_type"`
}

type suggestionsResponse struct {
	Success     bool                `json:"success"`
	Suggestions []suggestionuc.Idea `json:"suggestions"`
	Timestamp   string              `json:"timestamp"`
}

// CreateSuggestions handles POST /api/v1/suggestions.
func (s *Server) CreateSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	prefs, err := preference.New(
		req.City, preference.VenueType(req.VenueType), req.WeddingType, req.GuestCount, req.BudgetRange)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	ideas, err := s.suggestions.Suggest(r.Context(), prefs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Success:     true,
		Suggestions: ideas,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	})
}

// --- Surveys ---

type surveyResponse struct {
	Success bool                `json:"success"`
	Survey  domainsurvey.Record `json:"survey"`
}

// CreateSurvey handles POST /api/v1/surveys.
func (s *Server) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	if s.surveys == nil {
		writeError(w, http.StatusNotImplemented, CodeSurveyStoreError, "survey store is not configured")
		return
	}

	var rec domainsurvey.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	stored, err := s.surveys.Submit(r.Context(), rec)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, surveyResponse{Success: true, Survey: stored})
}

// GetSurvey handles GET /api/v1/surveys/{id}.
func (s *Server) GetSurvey(w http.ResponseWriter, r *http.Request) {
	if s.surveys == nil {
		writeError(w, http.StatusNotImplemented, CodeSurveyStoreError, "survey store is not configured")
		return
	}

	rec, err := s.surveys.Get(r.Context(), chirouter.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, surveyResponse{Success: true, Survey: rec})
}

type surveyListResponse struct {
	Success bool                  `json:"success"`
	Surveys []domainsurvey.Record `json:"surveys"`
	Total   int                   `json:"total"`
}

// ListSurveys handles GET /api/v1/surveys.
func (s *Server) ListSurveys(w http.ResponseWriter, r *http.Request) {
	if s.surveys == nil {
		writeError(w, http.StatusNotImplemented, CodeSurveyStoreError, "survey store is not configured")
		return
	}

	records, err := s.surveys.List(r.Context(), 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, surveyListResponse{
		Success: true,
		Surveys: records,
		Total:   len(records),
	})
}

// --- Operational endpoints ---

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- Error plumbing ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrRateLimited,
		domain.ErrSearchProviderError,
		domain.ErrSuggestionsDisabled,
		domain.ErrSuggestionProviderError,
		domain.ErrSurveyStoreError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
