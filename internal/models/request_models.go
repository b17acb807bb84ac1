package models

// SignUpRequest is the payload for POST /api/v1/auth/signup.
// The client-side form requires every profile field at sign-up; the binding
// tags mirror that, including the 6-character password floor the provider
// enforces anyway.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	School   string `json:"school" binding:"required"`
	Bio      string `json:"bio"`
	Age      int    `json:"age" binding:"required,gt=0"`
	Phone    string `json:"phone" binding:"required"`
	Sex      string `json:"sex" binding:"required"`
}

// LoginRequest is the payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload for PATCH /api/v1/profile/me.
// Pointer fields distinguish "not supplied" from "set to empty"; only the
// whitelisted edit-profile fields are accepted.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	School *string `json:"school,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// CreateListingRequest is the payload for POST /api/v1/listings.
// Province and condition are validated against the fixed sets via custom
// binding rules registered in the api package.
type CreateListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Condition   string  `json:"condition" binding:"required,listingcondition"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Province    string  `json:"province" binding:"required,province"`
	ImageURL    string  `json:"imageUrl"`
	VideoURL    string  `json:"videoUrl"`
	HideAddress bool    `json:"hideAddress"`
}
