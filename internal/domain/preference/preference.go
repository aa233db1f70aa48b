// Package preference models the user's wedding preferences used to rank vendors.
package preference

import "fmt"

// VenueType is the requested venue category.
type VenueType string

// Venue type constants.
const (
	Banquet  VenueType = "banquet"
	Resort   VenueType = "resort"
	Heritage VenueType = "heritage"
	Garden   VenueType = "garden"
	Temple   VenueType = "temple"
	// All disables venue-type filtering: every candidate gets the
	// venue-type score contribution.
	All VenueType = "all"
)

// IsValid checks if the venue type is one of the supported values.
func (v VenueType) IsValid() bool {
	switch v {
	case Banquet, Resort, Heritage, Garden, Temple, All:
		return true
	}
	return false
}

// Guest count limits.
const (
	DefaultGuestCount = 150
	MaxGuestCount     = 100000
)

// Context is a validated preference set for one discovery request.
type Context struct {
	city        string
	venueType   VenueType
	weddingType string
	guestCount  int
	budgetRange string
}

// New validates and normalizes a preference context.
// Defaults: venueType=all, guestCount=150.
func New(city string, venueType VenueType, weddingType string, guestCount int, budgetRange string) (Context, error) {
	if city == "" {
		return Context{}, fmt.Errorf("city is required")
	}
	if venueType == "" {
		venueType = All
	}
	if !venueType.IsValid() {
		return Context{}, fmt.Errorf("invalid venue type: %q", venueType)
	}
	if guestCount <= 0 {
		guestCount = DefaultGuestCount
	}
	if guestCount > MaxGuestCount {
		return Context{}, fmt.Errorf("guest count too large (max %d)", MaxGuestCount)
	}

	return Context{
		city:        city,
		venueType:   venueType,
		weddingType: weddingType,
		guestCount:  guestCount,
		budgetRange: budgetRange,
	}, nil
}

// City returns the wedding city.
func (c *Context) City() string { return c.city }

// VenueType returns the requested venue category.
func (c *Context) VenueType() VenueType { return c.venueType }

// WeddingType returns the cultural or religious wedding category label.
func (c *Context) WeddingType() string { return c.weddingType }

// GuestCount returns the expected number of guests.
func (c *Context) GuestCount() int { return c.guestCount }

// BudgetRange returns the free-text budget bucket label.
func (c *Context) BudgetRange() string { return c.budgetRange }
