package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/karizzz/subletez-backend/internal/models"
)

const subletsCollection = "sublets"

// firestoreListingRepository implements ListingRepository on Firestore.
type firestoreListingRepository struct {
	client *firestore.Client
}

// NewFirestoreListingRepository creates a ListingRepository backed by the
// given Firestore client.
func NewFirestoreListingRepository(client *firestore.Client) ListingRepository {
	return &firestoreListingRepository{client: client}
}

// Create appends a new listing document under an auto-generated ID. The
// creation timestamp is server-assigned. No validation happens here; the
// listing service owns publish policy.
func (r *firestoreListingRepository) Create(ctx context.Context, listing *models.Listing) (string, error) {
	if listing == nil {
		return "", errors.New("listing cannot be nil for Create operation")
	}

	doc := map[string]interface{}{
		"title":     listing.Title,
		"price":     listing.Price,
		"condition": listing.Condition,
		"location":  listing.Location,
		"city":      listing.City,
		"province":  listing.Province,
		"timestamp": firestore.ServerTimestamp,
	}
	if listing.Description != "" {
		doc["description"] = listing.Description
	}
	if listing.ImageURL != "" {
		doc["imageUrl"] = listing.ImageURL
	}
	if listing.VideoURL != "" {
		doc["videoUrl"] = listing.VideoURL
	}

	docRef := r.client.Collection(subletsCollection).NewDoc()
	if _, err := docRef.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("%w: create listing: %v", classifyStoreErr(err), err)
	}
	listing.ID = docRef.ID
	return docRef.ID, nil
}

// ListAll fetches every listing in the collection. Documents that fail to
// decode are skipped rather than failing the whole fetch, preserving the
// lenient behavior the browse screen has always had.
func (r *firestoreListingRepository) ListAll(ctx context.Context) ([]models.Listing, error) {
	iter := r.client.Collection(subletsCollection).Documents(ctx)
	defer iter.Stop()

	var listings []models.Listing
	for {
		docSnap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list sublets: %v", classifyStoreErr(err), err)
		}

		listing, err := parseListingDoc(docSnap.Ref.ID, docSnap.Data())
		if err != nil {
			continue
		}
		listings = append(listings, *listing)
	}
	return listings, nil
}

// parseListingDoc coerces a raw sublet document into a Listing. Early client
// builds wrote a different shape (string price, "selectedCondition",
// capitalized "City"/"Province"); both shapes are accepted on read, and the
// canonical lowercase form wins when both are present.
func parseListingDoc(id string, data map[string]interface{}) (*models.Listing, error) {
	if data == nil {
		return nil, errors.New("empty document")
	}

	listing := &models.Listing{ID: id}

	var err error
	if listing.Title, err = stringField(data, "title"); err != nil {
		return nil, err
	}
	if listing.Description, err = stringField(data, "description"); err != nil {
		return nil, err
	}
	if listing.Location, err = stringField(data, "location"); err != nil {
		return nil, err
	}
	if listing.ImageURL, err = stringField(data, "imageUrl"); err != nil {
		return nil, err
	}
	if listing.VideoURL, err = stringField(data, "videoUrl"); err != nil {
		return nil, err
	}

	listing.Price = priceValue(data["price"])
	listing.Condition = firstString(data, "condition", "selectedCondition")
	listing.City = firstString(data, "city", "City")
	listing.Province = firstString(data, "province", "Province")

	if listing.Timestamp, err = timeField(data, "timestamp"); err != nil {
		return nil, err
	}
	return listing, nil
}

// priceValue coerces the price field. Legacy records stored it as a string;
// an unparseable legacy value reads as 0 rather than dropping the listing.
func priceValue(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return price
	default:
		return 0
	}
}

// firstString returns the first of the given keys that holds a string value.
func firstString(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := data[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
