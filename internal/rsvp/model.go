package rsvp

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ============================
// 🔷 RSVP Document (collection: rsvps)
type RSVP struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Email               string              `bson:"email" json:"email"`
	Phone               string              `bson:"phone" json:"phone"`
	Attending           bool                `bson:"attending" json:"attending"`
	Guests              bool                `bson:"guests" json:"guests"`
	GuestName           string              `bson:"guestName" json:"guestName"`
	DietaryRestrictions DietaryRestrictions `bson:"dietaryRestrictions" json:"dietaryRestrictions"`
	Accommodations      bool                `bson:"accommodations" json:"accommodations"`
	AccommodationsText  string              `bson:"accommodationsText" json:"accommodationsText"`
	Song                string              `bson:"song" json:"song"`
	Message             string              `bson:"message" json:"message"`
	Approved            bool                `bson:"approved" json:"approved"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DietaryRestrictions is always stored fully populated; unknown extra fields
// from the client are never passed through.
type DietaryRestrictions struct {
	None             bool   `bson:"none" json:"none"`
	Vegetarian       bool   `bson:"vegetarian" json:"vegetarian"`
	Vegan            bool   `bson:"vegan" json:"vegan"`
	GlutenFree       bool   `bson:"glutenFree" json:"glutenFree"`
	NutAllergy       bool   `bson:"nutAllergy" json:"nutAllergy"`
	ShellfishAllergy bool   `bson:"shellfishAllergy" json:"shellfishAllergy"`
	Other            string `bson:"other" json:"other"`
}

// ============================
// 🟡 Submission Input (raw public payload)
// Pointer fields so that an absent field is distinguishable from a zero value;
// the strict-boolean checks in Validate depend on that.
type SubmissionInput struct {
	Name                *string                   `json:"name"`
	Email               *string                   `json:"email"`
	Phone               *string                   `json:"phone"`
	Attending           *bool                     `json:"attending"`
	Guests              *bool                     `json:"guests"`
	GuestName           *string                   `json:"guestName"`
	DietaryRestrictions *DietaryRestrictionsInput `json:"dietaryRestrictions"`
	Accommodations      *bool                     `json:"accommodations"`
	AccommodationsText  *string                   `json:"accommodationsText"`
	Song                *string                   `json:"song"`
	Message             *string                   `json:"message"`
	Approved            *bool                     `json:"approved"`
	CreatedAt           *time.Time                `json:"createdAt"`
}

type DietaryRestrictionsInput struct {
	None             *bool   `json:"none"`
	Vegetarian       *bool   `json:"vegetarian"`
	Vegan            *bool   `json:"vegan"`
	GlutenFree       *bool   `json:"glutenFree"`
	NutAllergy       *bool   `json:"nutAllergy"`
	ShellfishAllergy *bool   `json:"shellfishAllergy"`
	Other            *string `json:"other"`
}

// ============================
// 🟠 Update Request (partial field set, PUT /rsvps/:id)
type UpdateRequest struct {
	Name                *string                   `json:"name"`
	Email               *string                   `json:"email"`
	Phone               *string                   `json:"phone"`
	Attending           *bool                     `json:"attending"`
	Guests              *bool                     `json:"guests"`
	GuestName           *string                   `json:"guestName"`
	DietaryRestrictions *DietaryRestrictionsInput `json:"dietaryRestrictions"`
	Accommodations      *bool                     `json:"accommodations"`
	AccommodationsText  *string                   `json:"accommodationsText"`
	Song                *string                   `json:"song"`
	Message             *string                   `json:"message"`
	Approved            *bool                     `json:"approved"`
}

// ============================
// 📊 Aggregated stats over the whole collection
type Stats struct {
	Total        int `bson:"total" json:"total"`
	Attending    int `bson:"attending" json:"attending"`
	NotAttending int `bson:"notAttending" json:"notAttending"`
	TotalGuests  int `bson:"totalGuests" json:"totalGuests"`
}
