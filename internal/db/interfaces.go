package db

import (
	"context"

	"github.com/karizzz/subletez-backend/internal/models"
)

// ProfileRepository defines the storage operations for user profiles.
type ProfileRepository interface {
	// Create writes a new profile record keyed by user.ID. The repository
	// stamps createdAt and updatedAt; caller-supplied timestamps are ignored.
	Create(ctx context.Context, user *models.User) error
	// GetByID returns the profile for the given user ID, filling documented
	// defaults for missing fields. Fails with ErrNotFound when no record
	// exists and ErrParse when a stored field cannot be coerced.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// UpdateFields merges only the supplied fields into the existing record
	// and stamps updatedAt in the same write. It never touches createdAt or
	// the document key.
	UpdateFields(ctx context.Context, userID string, patch models.ProfilePatch) error
}

// ListingRepository defines the storage operations for sublet listings.
// It performs no validation; publish-time policy lives with the caller.
type ListingRepository interface {
	// Create appends a new listing under a store-generated ID with a
	// server-assigned creation timestamp. The generated ID is returned.
	Create(ctx context.Context, listing *models.Listing) (string, error)
	// ListAll fetches the full collection. No pagination and no server-side
	// ordering; callers sort and filter client-side.
	ListAll(ctx context.Context) ([]models.Listing, error)
}
