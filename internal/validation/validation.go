package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength    = 100
	MaxDietaryLength = 500
	MaxMessageLength = 1000
)

// Attendance and meal enum values
const (
	AttendanceYes  = "attending"
	AttendanceNo   = "not-attending"
	MealChicken    = "chicken"
	MealBeef       = "beef"
	MealVegetarian = "vegetarian"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// MealChoices lists the accepted meal values in display order
var MealChoices = []string{MealChicken, MealBeef, MealVegetarian}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidationError extracts a ValidationError from err's chain
func AsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ve, false
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateOptionalEmail accepts an empty value, otherwise defers to ValidateEmail
func ValidateOptionalEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return nil
	}
	return ValidateEmail(email)
}

// ValidateName checks if a guest name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", MaxNameLength)}
	}
	return nil
}

// ValidateUUID checks that value is a UUID-shaped identifier
func ValidateUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return ValidationError{Field: field, Message: "must be a valid UUID"}
	}
	return nil
}

// ValidateAttendance checks the attendance enum
func ValidateAttendance(value string) error {
	switch value {
	case AttendanceYes, AttendanceNo:
		return nil
	}
	return ValidationError{Field: "attendance", Message: "must be attending or not-attending"}
}

// ValidateMealChoice checks the meal enum; empty means no choice
func ValidateMealChoice(value string) error {
	if value == "" {
		return nil
	}
	for _, meal := range MealChoices {
		if value == meal {
			return nil
		}
	}
	return ValidationError{Field: "mealChoice", Message: "must be chicken, beef or vegetarian"}
}

// ValidateMaxLength bounds free text by character count
func ValidateMaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}
