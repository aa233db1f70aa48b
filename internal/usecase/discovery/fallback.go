package discovery

import "github.com/vivaha-cloud/vendex/internal/domain/vendor"

// DefaultFallbackVendors returns the static placeholder dataset served
// when no real candidate survives filtering. Every record carries
// Source=fallback so callers can tell placeholder data from real results.
func DefaultFallbackVendors() []vendor.Scored {
	mk := func(c vendor.Candidate, contactScore int) vendor.Scored {
		return vendor.Scored{
			Candidate:    c,
			ContactScore: contactScore,
			Source:       vendor.SourceFallback,
		}
	}

	return []vendor.Scored{
		mk(vendor.Candidate{
			Name:         "Grand Heritage Palace",
			Location:     "Juhu, Mumbai",
			RawText:      "heritage palace wedding venue in Mumbai with royal courtyards",
			Website:      "https://grandheritagepalace.example.com",
			Contact:      vendor.Contact{Phone: "+91 99991 23456", Email: "events@grandheritagepalace.example.com"},
			CapacityHint: 500,
			Rating:       4.6,
			PriceRange:   "premium",
			Amenities:    []string{"valet parking", "in-house catering", "bridal suite", "mandap setup"},
			Description:  "Restored heritage palace with lawns and indoor banquet halls for large weddings.",
		}, 75),
		mk(vendor.Candidate{
			Name:         "Lotus Garden Lawns",
			Location:     "Whitefield, Bengaluru",
			RawText:      "open air garden lawn for weddings and receptions in Bengaluru",
			Website:      "https://lotusgardenlawns.example.com",
			Contact:      vendor.Contact{Phone: "+91 98450 11223"},
			CapacityHint: 800,
			Rating:       4.3,
			PriceRange:   "mid-range",
			Amenities:    []string{"open lawn", "stage and lighting", "guest rooms"},
			Description:  "Landscaped garden venue suited for evening receptions and sangeet nights.",
		}, 50),
		mk(vendor.Candidate{
			Name:         "Sri Kalyana Mandapam",
			Location:     "Mylapore, Chennai",
			RawText:      "traditional kalyana mandapam near temple for south indian weddings",
			Contact:      vendor.Contact{Phone: "044 2499 8877", Email: "bookings@srikalyanamandapam.example.com"},
			CapacityHint: 300,
			Rating:       4.1,
			PriceRange:   "budget",
			Amenities:    []string{"dining hall", "nadaswaram stage", "priest arrangements"},
			Description:  "Classic mandapam with muhurtham halls and conventional dining service.",
		}, 50),
		mk(vendor.Candidate{
			Name:         "Royal Orchid Banquets",
			Location:     "Sector 29, Gurugram",
			RawText:      "banquet hall and convention centre for weddings in Gurugram",
			Website:      "https://royalorchidbanquets.example.com",
			Contact:      vendor.Contact{Phone: "+91 98110 44556", Email: "sales@royalorchidbanquets.example.com"},
			CapacityHint: 600,
			Rating:       4.4,
			PriceRange:   "premium",
			Amenities:    []string{"centrally air conditioned", "LED walls", "valet parking"},
			Description:  "Modern banquet complex with three halls and customizable decor themes.",
		}, 75),
		mk(vendor.Candidate{
			Name:         "Udai Bagh Resort",
			Location:     "Udaipur",
			RawText:      "lakeside destination wedding resort in Udaipur",
			Website:      "https://udaibaghresort.example.com",
			Contact:      vendor.Contact{Phone: "+91 94140 77889"},
			CapacityHint: 250,
			Rating:       4.7,
			PriceRange:   "luxury",
			Amenities:    []string{"lake view", "guest villas", "poolside dining", "event planning"},
			Description:  "Boutique resort for destination weddings with on-site planning staff.",
		}, 50),
		mk(vendor.Candidate{
			Name:         "Green Meadows Farmhouse",
			Location:     "Chattarpur, New Delhi",
			RawText:      "farmhouse wedding venue with lawns in south Delhi",
			Contact:      vendor.Contact{Phone: "+91 98100 33445"},
			CapacityHint: 400,
			Rating:       4.0,
			PriceRange:   "mid-range",
			Amenities:    []string{"open lawn", "indoor hall", "ample parking"},
			Description:  "Farmhouse with covered and open areas, popular for winter weddings.",
		}, 50),
	}
}
