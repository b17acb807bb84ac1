package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/karizzz/subletez-backend/internal/models"
)

// fakeListingRepo is an in-memory db.ListingRepository.
type fakeListingRepo struct {
	createErr error
	listErr   error
	stored    []models.Listing
	nextID    int
}

func (f *fakeListingRepo) Create(_ context.Context, listing *models.Listing) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	listing.ID = "listing-" + string(rune('0'+f.nextID))
	listing.Timestamp = time.Now().UTC()
	f.stored = append(f.stored, *listing)
	return listing.ID, nil
}

func (f *fakeListingRepo) ListAll(_ context.Context) ([]models.Listing, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Listing, len(f.stored))
	copy(out, f.stored)
	return out, nil
}

func validListingRequest() models.CreateListingRequest {
	return models.CreateListingRequest{
		Title:     "Cozy basement room",
		Price:     750,
		Condition: "New",
		Location:  "12 College St",
		City:      "Toronto",
		Province:  "ON",
		ImageURL:  "https://storage.googleapis.com/bucket/images/x.jpg",
	}
}

func newListingService(repo *fakeListingRepo) ListingService {
	return NewListingService(repo, SubstringFilter{}, zap.NewNop())
}

func TestPublishRequiresMedia(t *testing.T) {
	repo := &fakeListingRepo{}
	svc := newListingService(repo)

	req := validListingRequest()
	req.ImageURL = ""
	req.VideoURL = ""

	_, err := svc.Publish(context.Background(), req)
	if !errors.Is(err, ErrMissingMedia) {
		t.Fatalf("expected ErrMissingMedia, got %v", err)
	}
	if len(repo.stored) != 0 {
		t.Fatal("nothing may be persisted when publish policy rejects the draft")
	}
}

func TestPublishValidatesFixedSets(t *testing.T) {
	svc := newListingService(&fakeListingRepo{})

	req := validListingRequest()
	req.Province = "XX"
	if _, err := svc.Publish(context.Background(), req); !errors.Is(err, ErrInvalidProvince) {
		t.Errorf("expected ErrInvalidProvince, got %v", err)
	}

	req = validListingRequest()
	req.Condition = "Broken"
	if _, err := svc.Publish(context.Background(), req); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("expected ErrInvalidCondition, got %v", err)
	}

	req = validListingRequest()
	req.Title = "  "
	if _, err := svc.Publish(context.Background(), req); !errors.Is(err, ErrBlankListing) {
		t.Errorf("expected ErrBlankListing, got %v", err)
	}
}

func TestPublishHideAddressBlanksLocation(t *testing.T) {
	repo := &fakeListingRepo{}
	svc := newListingService(repo)

	req := validListingRequest()
	req.HideAddress = true

	listing, err := svc.Publish(context.Background(), req)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if listing.Location != "" {
		t.Errorf("location = %q, want blank when hideAddress is set", listing.Location)
	}
	if listing.City != "Toronto" || listing.Province != "ON" {
		t.Errorf("city/province must survive address hiding: %+v", listing)
	}
}

func TestBrowseSortsNewestFirstAndFilters(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeListingRepo{stored: []models.Listing{
		{ID: "old", Title: "Sunny 1BHK", Location: "Downtown Toronto", Timestamp: base},
		{ID: "new", Title: "Studio apartment", Location: "Downtown Toronto", Timestamp: base.Add(time.Hour)},
		{ID: "other", Title: "Shared 2BHK", Location: "Scarborough", Timestamp: base.Add(2 * time.Hour)},
	}}
	svc := newListingService(repo)

	all, err := svc.Browse(context.Background(), "")
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(all) != 3 || all[0].ID != "other" || all[1].ID != "new" || all[2].ID != "old" {
		t.Fatalf("expected newest-first order, got %v", ids(all))
	}

	downtown, err := svc.Browse(context.Background(), "downtown")
	if err != nil {
		t.Fatalf("Browse failed: %v", err)
	}
	if len(downtown) != 2 || downtown[0].ID != "new" || downtown[1].ID != "old" {
		t.Fatalf("expected filtered newest-first order, got %v", ids(downtown))
	}
}

func ids(listings []models.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}
