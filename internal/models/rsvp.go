package models

import (
	"time"

	"weddingrsvp/internal/validation"
)

// Attendance values
const (
	AttendanceAttending    = validation.AttendanceYes
	AttendanceNotAttending = validation.AttendanceNo
)

// RSVP is one guest's response. Resubmissions insert new rows; they never update.
type RSVP struct {
	ID                  string
	GuestID             string
	Attendance          string
	MealChoice          string // empty unless attending
	DietaryRestrictions string
	Message             string
	CreatedAt           time.Time
}

// IsAttending reports whether the guest accepted
func (r *RSVP) IsAttending() bool {
	return r.Attendance == AttendanceAttending
}

// Validate applies the record schema: UUID guest reference, enum membership and length bounds
func (r *RSVP) Validate() error {
	if err := validation.ValidateUUID("guestId", r.GuestID); err != nil {
		return err
	}
	if err := validation.ValidateAttendance(r.Attendance); err != nil {
		return err
	}
	if err := validation.ValidateMealChoice(r.MealChoice); err != nil {
		return err
	}
	if err := validation.ValidateMaxLength("dietaryRestrictions", r.DietaryRestrictions, validation.MaxDietaryLength); err != nil {
		return err
	}
	return validation.ValidateMaxLength("message", r.Message, validation.MaxMessageLength)
}
