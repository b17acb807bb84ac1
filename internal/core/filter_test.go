package core

import (
	"testing"

	"github.com/karizzz/subletez-backend/internal/models"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{ID: "1", Title: "Cozy basement room near University", Location: "North York"},
		{ID: "2", Title: "Sunny 1BHK", Location: "Downtown Toronto"},
		{ID: "3", Title: "Shared 2BHK close to metro", Location: "Scarborough"},
	}
}

func TestSubstringFilterBlankQueryIsIdentity(t *testing.T) {
	listings := sampleListings()

	for _, query := range []string{"", "   ", "\t\n"} {
		got := SubstringFilter{}.Apply(listings, query)
		if len(got) != len(listings) {
			t.Fatalf("query %q: got %d listings, want %d", query, len(got), len(listings))
		}
		for i := range got {
			if got[i].ID != listings[i].ID {
				t.Fatalf("query %q: order changed at index %d", query, i)
			}
		}
	}
}

func TestSubstringFilterIsCaseInsensitive(t *testing.T) {
	got := SubstringFilter{}.Apply(sampleListings(), "DOWNTOWN")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected the Downtown Toronto listing, got %+v", got)
	}
}

func TestSubstringFilterMatchesTitleOrLocation(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"basement", []string{"1"}},
		{"2bhk", []string{"3"}},
		{"toronto", []string{"2"}},
		{"nothing matches this", nil},
	}

	for _, tc := range cases {
		got := SubstringFilter{}.Apply(sampleListings(), tc.query)
		if len(got) != len(tc.want) {
			t.Fatalf("query %q: got %d listings, want %d", tc.query, len(got), len(tc.want))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("query %q: got listing %q at index %d, want %q", tc.query, got[i].ID, i, id)
			}
		}
	}
}
