package core

import (
	"context"
	"errors"
	"strings"

	"github.com/karizzz/subletez-backend/internal/db"
	"github.com/karizzz/subletez-backend/internal/models"
)

// Validation failures for profile updates.
var (
	ErrEmptyUpdate   = errors.New("no profile fields supplied")
	ErrBlankRequired = errors.New("name and school cannot be blank")
)

// profileService implements ProfileService.
type profileService struct {
	profiles db.ProfileRepository
}

// NewProfileService creates a ProfileService over the given repository.
func NewProfileService(profiles db.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.profiles.GetByID(ctx, userID)
}

// Update whitelists the edit-profile fields and trims them the way the
// client form does. Name and school may be changed but not blanked; bio may
// be set to empty.
func (s *profileService) Update(ctx context.Context, userID string, req models.UpdateProfileRequest) error {
	patch := models.ProfilePatch{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return ErrBlankRequired
		}
		patch.Name = &name
	}
	if req.School != nil {
		school := strings.TrimSpace(*req.School)
		if school == "" {
			return ErrBlankRequired
		}
		patch.School = &school
	}
	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		patch.Bio = &bio
	}

	if patch.IsEmpty() {
		return ErrEmptyUpdate
	}
	return s.profiles.UpdateFields(ctx, userID, patch)
}
