package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/karizzz/subletez-backend/internal/models"
)

const profileCollection = "profile"

// firestoreProfileRepository implements ProfileRepository on Firestore.
// The Firebase Auth UID is the document ID.
type firestoreProfileRepository struct {
	client *firestore.Client
}

// NewFirestoreProfileRepository creates a ProfileRepository backed by the
// given Firestore client.
func NewFirestoreProfileRepository(client *firestore.Client) ProfileRepository {
	return &firestoreProfileRepository{client: client}
}

// Create writes a new profile document. The optional attributes keep their
// legacy capitalized field names (Age, Phone, Sex) and are only written when
// present, matching what the mobile client expects to read back. Both
// timestamps are server-assigned.
func (r *firestoreProfileRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == "" {
		return errors.New("user ID cannot be empty for Create operation")
	}

	doc := map[string]interface{}{
		"name":      user.Name,
		"school":    user.School,
		"bio":       user.Bio,
		"email":     user.Email,
		"createdAt": firestore.ServerTimestamp,
		"updatedAt": firestore.ServerTimestamp,
	}
	if user.Age != nil {
		doc["Age"] = *user.Age
	}
	if user.Phone != nil {
		doc["Phone"] = *user.Phone
	}
	if user.Sex != nil {
		doc["Sex"] = *user.Sex
	}
	if user.ProfileImageURL != "" {
		doc["profileImageURL"] = user.ProfileImageURL
	}

	if _, err := r.client.Collection(profileCollection).Doc(user.ID).Create(ctx, doc); err != nil {
		return fmt.Errorf("%w: create profile %q: %v", classifyCreateErr(err), user.ID, err)
	}
	return nil
}

// Create against an existing document surfaces AlreadyExists, which has no
// slot of its own in the taxonomy; it is a transport-level conflict.
func classifyCreateErr(err error) error {
	if status.Code(err) == codes.AlreadyExists {
		return ErrTransport
	}
	return classifyStoreErr(err)
}

// GetByID fetches and decodes a profile document.
func (r *firestoreProfileRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}

	docSnap, err := r.client.Collection(profileCollection).Doc(userID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get profile %q: %v", classifyStoreErr(err), userID, err)
	}

	user, err := parseUserDoc(userID, docSnap.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: profile %q: %v", ErrParse, userID, err)
	}
	return user, nil
}

// UpdateFields merges only the supplied fields and stamps updatedAt as part
// of the same write. firestore.Client.Update fails with NotFound for a
// missing document, so a partial update can never create a record.
func (r *firestoreProfileRepository) UpdateFields(ctx context.Context, userID string, patch models.ProfilePatch) error {
	if userID == "" {
		return errors.New("userID cannot be empty for UpdateFields operation")
	}

	updates := []firestore.Update{
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *patch.Name})
	}
	if patch.School != nil {
		updates = append(updates, firestore.Update{Path: "school", Value: *patch.School})
	}
	if patch.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *patch.Bio})
	}

	if _, err := r.client.Collection(profileCollection).Doc(userID).Update(ctx, updates); err != nil {
		return fmt.Errorf("%w: update profile %q: %v", classifyStoreErr(err), userID, err)
	}
	return nil
}

// parseUserDoc coerces a raw profile document into a User. Missing fields
// take safe defaults (empty string for required strings, the current time
// for timestamps) to preserve the lenient reads older clients rely on; a
// field that is present with the wrong type is an error.
func parseUserDoc(id string, data map[string]interface{}) (*models.User, error) {
	if data == nil {
		return nil, errors.New("empty document")
	}

	user := &models.User{ID: id}

	var err error
	if user.Name, err = stringField(data, "name"); err != nil {
		return nil, err
	}
	if user.School, err = stringField(data, "school"); err != nil {
		return nil, err
	}
	if user.Bio, err = stringField(data, "bio"); err != nil {
		return nil, err
	}
	if user.Email, err = stringField(data, "email"); err != nil {
		return nil, err
	}
	if user.ProfileImageURL, err = stringField(data, "profileImageURL"); err != nil {
		return nil, err
	}

	if raw, ok := data["Age"]; ok {
		age, err := intValue(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", "Age", err)
		}
		user.Age = &age
	}
	if raw, ok := data["Phone"]; ok {
		phone, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field %q: expected string, got %T", "Phone", raw)
		}
		user.Phone = &phone
	}
	if raw, ok := data["Sex"]; ok {
		sex, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field %q: expected string, got %T", "Sex", raw)
		}
		user.Sex = &sex
	}

	if user.CreatedAt, err = timeField(data, "createdAt"); err != nil {
		return nil, err
	}
	if user.UpdatedAt, err = timeField(data, "updatedAt"); err != nil {
		return nil, err
	}
	return user, nil
}

func stringField(data map[string]interface{}, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return s, nil
}

func timeField(data map[string]interface{}, key string) (time.Time, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return time.Now().UTC(), nil
	}
	t, ok := raw.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("field %q: expected timestamp, got %T", key, raw)
	}
	return t, nil
}

// intValue accepts the numeric representations Firestore decodes to.
func intValue(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", raw)
	}
}
