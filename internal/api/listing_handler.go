package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/metrics"
	"github.com/karizzz/subletez-backend/internal/models"
)

// ListingHandler exposes listing publish and browse.
type ListingHandler struct {
	listings core.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listings core.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Create handles POST /api/v1/listings.
func (h *ListingHandler) Create(c *gin.Context) {
	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid listing payload", Details: err.Error()})
		return
	}

	listing, err := h.listings.Publish(c.Request.Context(), req)
	if err != nil {
		metrics.IncListingPublished("failure")
		if isPublishPolicyErr(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: "failed to publish listing", Details: err.Error()})
		return
	}

	metrics.IncListingPublished("success")
	c.JSON(http.StatusCreated, listing)
}

// List handles GET /api/v1/listings?q=. The query is optional; a blank
// query returns the whole collection, newest first.
func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.listings.Browse(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(storeErrorStatus(err), ErrorResponse{Error: "failed to load listings", Details: err.Error()})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func isPublishPolicyErr(err error) bool {
	return errors.Is(err, core.ErrMissingMedia) ||
		errors.Is(err, core.ErrInvalidProvince) ||
		errors.Is(err, core.ErrInvalidCondition) ||
		errors.Is(err, core.ErrBlankListing)
}
