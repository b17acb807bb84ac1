package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/karizzz/subletez-backend/internal/db"
	"github.com/karizzz/subletez-backend/internal/models"
)

// Publish policy failures. The repository persists whatever it is handed;
// these rules are enforced here, before the write.
var (
	ErrMissingMedia     = errors.New("listing needs at least one photo or video")
	ErrInvalidProvince  = errors.New("province must be one of the supported codes")
	ErrInvalidCondition = errors.New("condition must be one of the supported values")
	ErrBlankListing     = errors.New("title, price, city and province are required")
)

// listingService implements ListingService.
type listingService struct {
	listings db.ListingRepository
	filter   ListingFilter
	logger   *zap.Logger
}

// NewListingService creates a ListingService over the given repository and
// filter strategy.
func NewListingService(listings db.ListingRepository, filter ListingFilter, logger *zap.Logger) ListingService {
	return &listingService{
		listings: listings,
		filter:   filter,
		logger:   logger,
	}
}

// Publish validates the draft and appends it. When the hide-address flag is
// set the street address is blanked before persisting; city and province
// still place the listing on the map.
func (s *listingService) Publish(ctx context.Context, req models.CreateListingRequest) (*models.Listing, error) {
	title := strings.TrimSpace(req.Title)
	city := strings.TrimSpace(req.City)
	if title == "" || city == "" || req.Province == "" || req.Price <= 0 {
		return nil, ErrBlankListing
	}
	if !contains(models.Provinces, req.Province) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProvince, req.Province)
	}
	if !contains(models.Conditions, req.Condition) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCondition, req.Condition)
	}

	listing := models.Listing{
		Title:       title,
		Price:       req.Price,
		Condition:   req.Condition,
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		City:        city,
		Province:    req.Province,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	}
	if !listing.HasMedia() {
		return nil, ErrMissingMedia
	}
	if req.HideAddress {
		listing.Location = ""
	}

	id, err := s.listings.Create(ctx, &listing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("listing published", zap.String("listingID", id), zap.String("city", listing.City))
	return &listing, nil
}

// Browse fetches the full collection, orders it newest first and applies
// the filter. The store guarantees no ordering, so the sort happens here.
func (s *listingService) Browse(ctx context.Context, query string) ([]models.Listing, error) {
	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Timestamp.After(listings[j].Timestamp)
	})
	return s.filter.Apply(listings, query), nil
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
