package core

import (
	"context"

	"github.com/karizzz/subletez-backend/internal/identity"
	"github.com/karizzz/subletez-backend/internal/models"
)

// AccountService composes the identity provider and the profile repository
// into the sign-up, login and sign-out flows.
type AccountService interface {
	// SignUp creates the identity account and then the profile record as one
	// logical operation. If the profile write fails, the freshly created
	// account is deleted again (best effort) and the failure surfaced.
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error)
	// Login delegates to the identity provider only; it does not check that
	// a profile record exists.
	Login(ctx context.Context, email, password string) (*identity.Session, error)
	// SignOut revokes the account's provider sessions. No local state exists
	// to clear.
	SignOut(ctx context.Context, userID string) error
}

// ProfileService exposes the signed-in user's profile.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	// Update applies a partial update restricted to the edit-profile fields
	// (name, school, bio).
	Update(ctx context.Context, userID string, req models.UpdateProfileRequest) error
}

// ListingService owns publish policy and the browse flow.
type ListingService interface {
	Publish(ctx context.Context, req models.CreateListingRequest) (*models.Listing, error)
	// Browse fetches all listings, orders them newest first and applies the
	// configured filter to the query.
	Browse(ctx context.Context, query string) ([]models.Listing, error)
}
