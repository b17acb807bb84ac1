package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserDocFullDocument(t *testing.T) {
	created := time.Date(2025, 1, 27, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	user, err := parseUserDoc("uid-123", map[string]interface{}{
		"name":            "Akshay",
		"school":          "UofT",
		"bio":             "hello",
		"email":           "a@b.com",
		"Age":             int64(21),
		"Phone":           "555-0100",
		"Sex":             "Male",
		"profileImageURL": "https://example.com/p.jpg",
		"createdAt":       created,
		"updatedAt":       updated,
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-123", user.ID)
	assert.Equal(t, "Akshay", user.Name)
	assert.Equal(t, "UofT", user.School)
	assert.Equal(t, "a@b.com", user.Email)
	require.NotNil(t, user.Age)
	assert.Equal(t, 21, *user.Age)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "555-0100", *user.Phone)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, updated, user.UpdatedAt)
	assert.False(t, user.CreatedAt.After(user.UpdatedAt))
}

func TestParseUserDocFillsDefaultsForMissingFields(t *testing.T) {
	before := time.Now().UTC()
	user, err := parseUserDoc("uid-123", map[string]interface{}{
		"email": "a@b.com",
	})
	require.NoError(t, err)

	// Missing required strings read as empty, never as a failure.
	assert.Equal(t, "", user.Name)
	assert.Equal(t, "", user.School)
	assert.Equal(t, "", user.Bio)
	assert.Nil(t, user.Age)
	assert.Nil(t, user.Phone)
	assert.Nil(t, user.Sex)

	// Missing timestamps default to the current time.
	assert.False(t, user.CreatedAt.Before(before))
	assert.False(t, user.UpdatedAt.Before(before))
}

func TestParseUserDocRejectsWrongTypes(t *testing.T) {
	cases := []map[string]interface{}{
		{"name": int64(7)},
		{"Age": "twenty"},
		{"Phone": int64(5550100)},
		{"createdAt": "2025-01-27"},
	}

	for _, data := range cases {
		_, err := parseUserDoc("uid-123", data)
		assert.Error(t, err, "data %v", data)
	}
}

func TestParseUserDocRejectsEmptyDocument(t *testing.T) {
	_, err := parseUserDoc("uid-123", nil)
	assert.Error(t, err)
}

func TestIntValueAcceptsFirestoreNumericShapes(t *testing.T) {
	for _, raw := range []interface{}{int64(21), 21, float64(21)} {
		got, err := intValue(raw)
		require.NoError(t, err)
		assert.Equal(t, 21, got)
	}

	_, err := intValue("21")
	assert.Error(t, err)
}
