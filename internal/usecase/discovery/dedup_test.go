package discovery

import (
	"testing"

	"github.com/vivaha-cloud/vendex/internal/domain/vendor"
)

func scoredNamed(name string, relevance, contact int) vendor.Scored {
	return vendor.Scored{
		Candidate:      vendor.Candidate{Name: name},
		RelevanceScore: relevance,
		ContactScore:   contact,
		Source:         vendor.SourceSearch,
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Grand-Palace ", "grand palace"},
		{"GRAND   PALACE", "grand palace"},
		{"Shree Krishna & Sons", "shree krishna sons"},
		{"Café Royale!", "café royale"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	sim := LevenshteinSimilarity{}

	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"grand palace", "grand palace", 1, 1},
		{"grand palace", "grand palaces", 0.9, 1},
		{"grand palace", "lotus lawns", 0, 0.4},
		{"", "anything", 0, 0},
	}
	for _, tt := range tests {
		got := sim.Ratio(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Ratio(%q, %q) = %.3f, want in [%.2f, %.2f]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}

func TestDeduplicate_KeepsHigherRelevance(t *testing.T) {
	list := []vendor.Scored{
		scoredNamed("Grand Palace", 30, 25),
		scoredNamed("The Grand Palace?", 55, 0),
	}

	got := deduplicate(list, LevenshteinSimilarity{})
	if len(got) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(got))
	}
	if got[0].RelevanceScore != 55 {
		t.Errorf("survivor relevance = %d, want 55", got[0].RelevanceScore)
	}
}

func TestDeduplicate_TieBrokenByContactScore(t *testing.T) {
	list := []vendor.Scored{
		scoredNamed("Lotus Lawns", 40, 25),
		scoredNamed("LOTUS LAWNS", 40, 75),
	}

	got := deduplicate(list, LevenshteinSimilarity{})
	if len(got) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(got))
	}
	if got[0].ContactScore != 75 {
		t.Errorf("survivor contact score = %d, want 75", got[0].ContactScore)
	}
}

func TestDeduplicate_NearIdenticalNames(t *testing.T) {
	// One-character difference on a long name is above the threshold.
	list := []vendor.Scored{
		scoredNamed("Royal Orchid Banquets", 50, 50),
		scoredNamed("Royal Orchid Banquet", 20, 0),
		scoredNamed("Green Meadows Farmhouse", 35, 25),
	}

	got := deduplicate(list, LevenshteinSimilarity{})
	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(got))
	}
	if got[0].Name != "Royal Orchid Banquets" {
		t.Errorf("first survivor = %q, want the higher-scored duplicate", got[0].Name)
	}
	if got[1].Name != "Green Meadows Farmhouse" {
		t.Errorf("second survivor = %q", got[1].Name)
	}
}

func TestDeduplicate_DistinctNamesUntouched(t *testing.T) {
	list := []vendor.Scored{
		scoredNamed("Grand Heritage Palace", 10, 0),
		scoredNamed("Lotus Garden Lawns", 20, 0),
		scoredNamed("Sri Kalyana Mandapam", 30, 0),
	}

	got := deduplicate(list, LevenshteinSimilarity{})
	if len(got) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(got))
	}
}
