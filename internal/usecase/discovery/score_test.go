package discovery

import (
	"testing"

	"github.com/vivaha-cloud/vendex/internal/domain/preference"
	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

func mustContext(t *testing.T, city string, vt preference.VenueType, weddingType string, guests int) preference.Context {
	t.Helper()
	ctx, err := preference.New(city, vt, weddingType, guests, "")
	if err != nil {
		t.Fatalf("preference.New: %v", err)
	}
	return ctx
}

func TestComputeContactScore(t *testing.T) {
	tests := []struct {
		name    string
		contact vendor.Contact
		website string
		want    int
	}{
		{name: "no contacts", want: 0},
		{
			name:    "phone only",
			contact: vendor.Contact{Phone: "+919999123456"},
			want:    25,
		},
		{
			name:    "phone and email",
			contact: vendor.Contact{Phone: "+91 99991 23456", Email: "hello@venue.in"},
			want:    50,
		},
		{
			name:    "all four channels",
			contact: vendor.Contact{Phone: "+919999123456", Email: "a@b.co", Website: "https://venue.in", Whatsapp: "+919999123456"},
			want:    100,
		},
		{
			name:    "malformed fields score as absent",
			contact: vendor.Contact{Phone: "call us", Email: "not-an-email", Website: "::::"},
			want:    0,
		},
		{
			name:    "search link counts as website",
			website: "https://venue.example.com/home",
			want:    25,
		},
		{
			name:    "short phone rejected",
			contact: vendor.Contact{Phone: "12345"},
			want:    0,
		},
		{
			name:    "email without domain dot rejected",
			contact: vendor.Contact{Email: "owner@localhost"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := vendor.Candidate{Contact: tt.contact, Website: tt.website}
			if got := computeContactScore(c); got != tt.want {
				t.Errorf("computeContactScore = %d, want %d", got, tt.want)
			}
		})
	}
}

// Adding a valid channel never lowers the score.
func TestComputeContactScore_Monotonic(t *testing.T) {
	steps := []vendor.Contact{
		{},
		{Phone: "+919999123456"},
		{Phone: "+919999123456", Email: "a@b.co"},
		{Phone: "+919999123456", Email: "a@b.co", Website: "https://v.in"},
		{Phone: "+919999123456", Email: "a@b.co", Website: "https://v.in", Whatsapp: "+919999123456"},
	}
	prev := -1
	for i, contact := range steps {
		got := computeContactScore(vendor.Candidate{Contact: contact})
		if got < prev {
			t.Fatalf("step %d: score %d dropped below previous %d", i, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("step %d: score %d out of [0,100]", i, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("all channels present should score 100, got %d", prev)
	}
}

func TestComputeRelevanceScore(t *testing.T) {
	prefs := mustContext(t, "Mumbai", preference.Heritage, "Traditional Hindu", 280)

	tests := []struct {
		name      string
		candidate vendor.Candidate
		contact   int
		want      int
	}{
		{
			name: "spec example scores city, venue, wedding, capacity, contact",
			candidate: vendor.Candidate{
				Name:         "Grand Heritage Palace",
				Location:     "Mumbai",
				RawText:      "heritage palace wedding venue Mumbai",
				CapacityHint: 300,
			},
			contact: 25,
			want:    20 + 15 + 10 + 15 + 5,
		},
		{
			name:      "nothing matches",
			candidate: vendor.Candidate{Name: "Some Venue", Location: "Pune", RawText: "conference space"},
			want:      0,
		},
		{
			name: "capacity outside tolerance contributes nothing",
			candidate: vendor.Candidate{
				Name:         "Grand Heritage Palace",
				Location:     "Mumbai",
				RawText:      "heritage palace",
				CapacityHint: 1000,
			},
			contact: 0,
			want:    20 + 15 + 10,
		},
		{
			name: "missing capacity hint contributes nothing",
			candidate: vendor.Candidate{
				Name:     "Grand Heritage Palace",
				Location: "Mumbai",
				RawText:  "heritage palace",
			},
			want: 20 + 15 + 10,
		},
		{
			name: "quality marker from rating mention",
			candidate: vendor.Candidate{
				Name:    "City Hall",
				RawText: "rated 4.5 stars banquet",
			},
			// banquet text does not match heritage venue type
			want: 5,
		},
		{
			name: "case-insensitive city substring",
			candidate: vendor.Candidate{
				Name:     "Seaside Resort",
				Location: "Andheri West, MUMBAI",
				RawText:  "resort",
			},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeRelevanceScore(tt.candidate, prefs, tt.contact)
			if got != tt.want {
				t.Errorf("computeRelevanceScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeRelevanceScore_VenueTypeAll(t *testing.T) {
	prefs := mustContext(t, "Mumbai", preference.All, "", 150)
	c := vendor.Candidate{Name: "Anything Goes Hall", RawText: "events"}

	got := computeRelevanceScore(c, prefs, 0)
	if got != 15 {
		t.Errorf("venue type 'all' should always grant %d, got %d", 15, got)
	}
}

func TestComputeRelevanceScore_MaxAttainable(t *testing.T) {
	prefs := mustContext(t, "Mumbai", preference.Heritage, "Traditional Hindu", 300)
	c := vendor.Candidate{
		Name:         "Grand Heritage Palace",
		Location:     "Mumbai",
		RawText:      "award winning heritage palace mandap wedding venue rated 4.8 stars",
		CapacityHint: 320,
	}

	got := computeRelevanceScore(c, prefs, 100)
	if got != 70 {
		t.Errorf("max attainable score should be 70, got %d", got)
	}
}

func TestHasValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+919999123456", true},
		{"+91 99991-23456", true},
		{"(044) 2499 8877", true},
		{"98100334", true},
		{"1234567", false},          // too short
		{"12345678901234567", false}, // too long
		{"call +91 99991", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := hasValidPhone(tt.phone); got != tt.want {
			t.Errorf("hasValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
