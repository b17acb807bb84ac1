package models

import "time"

// User represents a student profile.
// The ID is the Firebase Auth UID and doubles as the Firestore document ID;
// it is assigned by the identity provider at sign-up and never changes.
//
// Persisted field names are contractual: the mobile client reads the same
// collection, including the capitalized legacy names of the three optional
// attributes (Age, Phone, Sex).
type User struct {
	ID              string    `json:"id" firestore:"-"`
	Name            string    `json:"name" firestore:"name"`
	School          string    `json:"school" firestore:"school"`
	Bio             string    `json:"bio" firestore:"bio"`
	Email           string    `json:"email" firestore:"email"`
	Age             *int      `json:"age,omitempty" firestore:"Age,omitempty"`
	Phone           *string   `json:"phone,omitempty" firestore:"Phone,omitempty"`
	Sex             *string   `json:"sex,omitempty" firestore:"Sex,omitempty"`
	ProfileImageURL string    `json:"profileImageURL,omitempty" firestore:"profileImageURL,omitempty"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched in the stored record. Only the fields the edit-profile flow may
// change are present; email, age, phone, sex and the image URL are
// deliberately not patchable through this path.
type ProfilePatch struct {
	Name   *string
	School *string
	Bio    *string
}

// IsEmpty reports whether the patch contains no changes.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.School == nil && p.Bio == nil
}
