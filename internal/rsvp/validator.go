package rsvp

import (
	"regexp"
	"strings"
	"time"
)

// local@domain.tld, nothing fancier: the client form does the friendly checks
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a submitted payload against the required-field and
// conditional-field rules. It accumulates every applicable error rather than
// stopping at the first failure; the payload is valid iff the returned list
// is empty.
func Validate(in *SubmissionInput) (bool, []string) {
	var errs []string

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, "Name is required")
	}

	if in.Email == nil || strings.TrimSpace(*in.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(strings.TrimSpace(*in.Email)) {
		errs = append(errs, "Invalid email format")
	}

	if in.Phone == nil || strings.TrimSpace(*in.Phone) == "" {
		errs = append(errs, "Phone is required")
	}

	if in.Attending == nil {
		errs = append(errs, "Attending status is required")
	}
	if in.Guests == nil {
		errs = append(errs, "Guests status is required")
	}
	if in.Accommodations == nil {
		errs = append(errs, "Accommodations status is required")
	}

	if in.Guests != nil && *in.Guests {
		if in.GuestName == nil || strings.TrimSpace(*in.GuestName) == "" {
			errs = append(errs, "Guest name is required when bringing guests")
		}
	}

	if in.Accommodations != nil && *in.Accommodations {
		if in.AccommodationsText == nil || strings.TrimSpace(*in.AccommodationsText) == "" {
			errs = append(errs, "Accommodation details are required when accommodations are needed")
		}
	}

	return len(errs) == 0, errs
}

// Normalize produces the defaulted, trimmed document shape from arbitrary
// input. Missing fields get their documented defaults, booleans coerce nil to
// false, free text is trimmed, email is lower-cased, and the dietary
// restrictions sub-document is rebuilt field by field so unknown extras never
// reach storage. UpdatedAt always advances to now; an existing CreatedAt is
// preserved. Normalize does not re-validate: callers run Validate first.
func Normalize(in *SubmissionInput) *RSVP {
	now := time.Now().UTC()

	createdAt := now
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = *in.CreatedAt
	}

	return &RSVP{
		Name:                trimmed(in.Name),
		Email:               strings.ToLower(trimmed(in.Email)),
		Phone:               trimmed(in.Phone),
		Attending:           boolValue(in.Attending),
		Guests:              boolValue(in.Guests),
		GuestName:           trimmed(in.GuestName),
		DietaryRestrictions: normalizeDietary(in.DietaryRestrictions),
		Accommodations:      boolValue(in.Accommodations),
		AccommodationsText:  trimmed(in.AccommodationsText),
		Song:                trimmed(in.Song),
		Message:             trimmed(in.Message),
		Approved:            boolValue(in.Approved),
		CreatedAt:           createdAt,
		UpdatedAt:           now,
	}
}

func normalizeDietary(in *DietaryRestrictionsInput) DietaryRestrictions {
	if in == nil {
		return DietaryRestrictions{}
	}
	return DietaryRestrictions{
		None:             boolValue(in.None),
		Vegetarian:       boolValue(in.Vegetarian),
		Vegan:            boolValue(in.Vegan),
		GlutenFree:       boolValue(in.GlutenFree),
		NutAllergy:       boolValue(in.NutAllergy),
		ShellfishAllergy: boolValue(in.ShellfishAllergy),
		Other:            trimmed(in.Other),
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

// ValidEmail reports whether the address matches the accepted shape. Used by
// the partial-update path, which only checks fields actually supplied.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// normalizeEmail lower-cases and trims an address for lookups and storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
