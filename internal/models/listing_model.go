package models

import "time"

// Conditions is the fixed set of values a listing's condition may take,
// matching the options the mobile client offers.
var Conditions = []string{"New", "Used - Like New", "Used - Good", "Used - Fair"}

// Provinces is the fixed set of Canadian province and territory codes
// accepted for a listing.
var Provinces = []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"}

// Listing represents a published sublet.
// The ID is the store-generated Firestore document ID. The schema carries no
// author reference; listings cannot currently be attributed to the account
// that published them.
//
// Price is canonically a number. Early client versions wrote it as a string
// (and wrote City/Province capitalized and the condition under
// "selectedCondition"); the repository coerces those legacy shapes on read.
type Listing struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	Price       float64   `json:"price" firestore:"price"`
	Condition   string    `json:"condition" firestore:"condition"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Location    string    `json:"location" firestore:"location"`
	City        string    `json:"city" firestore:"city"`
	Province    string    `json:"province" firestore:"province"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty" firestore:"videoUrl,omitempty"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
}

// HasMedia reports whether the listing carries at least one media item.
// Publish-time policy requires this; the repository itself does not.
func (l Listing) HasMedia() bool {
	return l.ImageURL != "" || l.VideoURL != ""
}
