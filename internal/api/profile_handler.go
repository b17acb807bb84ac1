package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/db"
	"github.com/karizzz/subletez-backend/internal/middleware"
	"github.com/karizzz/subletez-backend/internal/models"
)

// ProfileHandler exposes the signed-in user's profile.
type ProfileHandler struct {
	profiles core.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles core.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetMe handles GET /api/v1/profile/me.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user identity missing from context"})
		return
	}

	user, err := h.profiles.Get(c.Request.Context(), uid)
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: "failed to load profile", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PATCH /api/v1/profile/me. Only name, school and bio are
// accepted; everything else in the record is left untouched.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	uid, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "user identity missing from context"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile payload", Details: err.Error()})
		return
	}

	if err := h.profiles.Update(c.Request.Context(), uid, req); err != nil {
		if errors.Is(err, core.ErrEmptyUpdate) || errors.Is(err, core.ErrBlankRequired) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: "failed to update profile", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "profile updated"})
}

// storeErrorStatus maps the store error taxonomy onto HTTP status codes.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
