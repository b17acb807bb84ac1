package core

import (
	"strings"

	"github.com/karizzz/subletez-backend/internal/models"
)

// ListingFilter narrows a fetched listing set to a search query. It is an
// interface so the naive scan below can later be swapped for a real search
// component without touching callers.
type ListingFilter interface {
	Apply(listings []models.Listing, query string) []models.Listing
}

// SubstringFilter matches the query case-insensitively against title or
// location. A blank or whitespace-only query is the identity filter: the
// input comes back unchanged, in the same order.
type SubstringFilter struct{}

func (SubstringFilter) Apply(listings []models.Listing, query string) []models.Listing {
	query = strings.TrimSpace(query)
	if query == "" {
		return listings
	}

	needle := strings.ToLower(query)
	var matched []models.Listing
	for _, listing := range listings {
		if strings.Contains(strings.ToLower(listing.Title), needle) ||
			strings.Contains(strings.ToLower(listing.Location), needle) {
			matched = append(matched, listing)
		}
	}
	return matched
}
