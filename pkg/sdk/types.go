package vendex

// SearchRequest is the venue search input.
type SearchRequest struct {
	City        string `json:"city"`
	VenueType   string `json:"venue_type,omitempty"`
	GuestCount  int    `json:"guest_count,omitempty"`
	BudgetRange string `json:"budget_range,omitempty"`
	WeddingType string `json:"wedding_type,omitempty"`
}

// Contact holds the reachable channels of a venue.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Venue is one ranked discovery result.
type Venue struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Capacity       int      `json:"capacity"`
	Rating         float64  `json:"rating"`
	PriceRange     string   `json:"priceRange"`
	Amenities      []string `json:"amenities"`
	Description    string   `json:"description"`
	Contact        Contact  `json:"contact"`
	Website        string   `json:"website"`
	Source         string   `json:"source"`
	RelevanceScore int      `json:"relevanceScore"`
}

// SearchResponse is the venue search output.
type SearchResponse struct {
	Success    bool    `json:"success"`
	Venues     []Venue `json:"venues"`
	TotalFound int     `json:"total_found"`
	AIEnabled  bool    `json:"ai_enabled"`
	Timestamp  string  `json:"timestamp"`
}

// Idea is one AI-generated wedding suggestion.
type Idea struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// SuggestionsResponse is the suggestion output.
type SuggestionsResponse struct {
	Success     bool   `json:"success"`
	Suggestions []Idea `json:"suggestions"`
	Timestamp   string `json:"timestamp"`
}

// Survey is a wedding preference survey record.
type Survey struct {
	ID          string   `json:"id,omitempty"`
	CoupleNames string   `json:"couple_names"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	WeddingDate string   `json:"wedding_date,omitempty"`
	City        string   `json:"city"`
	VenueType   string   `json:"venue_type,omitempty"`
	WeddingType string   `json:"wedding_type,omitempty"`
	GuestCount  int      `json:"guest_count,omitempty"`
	BudgetRange string   `json:"budget_range,omitempty"`
	Events      []string `json:"events,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// HealthReport is the service health output.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
