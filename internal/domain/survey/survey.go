// Package survey defines the wedding preference survey record persisted to NocoDB.
package survey

import "time"

// Record is one submitted wedding preference survey.
type Record struct {
	ID           string    `json:"id"`
	CoupleNames  string    `json:"couple_names"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	WeddingDate  string    `json:"wedding_date,omitempty"` // free text, couples rarely have a fixed date
	City         string    `json:"city"`
	VenueType    string    `json:"venue_type,omitempty"`
	WeddingType  string    `json:"wedding_type,omitempty"`
	GuestCount   int       `json:"guest_count,omitempty"`
	BudgetRange  string    `json:"budget_range,omitempty"`
	Events       []string  `json:"events,omitempty"` // haldi, mehndi, sangeet, reception, ...
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
