package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with subdomain",
			email:   "user@mail.example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus",
			email:   "user+tag@example.com",
			wantErr: false,
		},
		{
			name:    "missing @",
			email:   "testexample.com",
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   "test@",
			wantErr: true,
		},
		{
			name:    "missing local part",
			email:   "@example.com",
			wantErr: true,
		},
		{
			name:    "empty string",
			email:   "",
			wantErr: true,
		},
		{
			name:    "spaces in email",
			email:   "test @example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid name",
			input:   "John Doe",
			wantErr: false,
		},
		{
			name:    "single name",
			input:   "John",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "single letter",
			input:   "J",
			wantErr: false,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "name too long",
			input:   strings.Repeat("a", 101),
			wantErr: true,
		},
		{
			name:    "100 accented characters",
			input:   strings.Repeat("é", 100),
			wantErr: false,
		},
		{
			name:    "name with hyphen",
			input:   "Mary-Jane",
			wantErr: false,
		},
		{
			name:    "name with apostrophe",
			input:   "O'Brien",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOptionalEmail(t *testing.T) {
	if err := ValidateOptionalEmail(""); err != nil {
		t.Errorf("ValidateOptionalEmail(\"\") error = %v, want nil", err)
	}
	if err := ValidateOptionalEmail("not-an-email"); err == nil {
		t.Error("ValidateOptionalEmail(\"not-an-email\") should fail")
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "6f1c2d0e-8a4b-4c3d-9e2f-1a2b3c4d5e6f", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "guest-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUID("guestId", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUUID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEnums(t *testing.T) {
	for _, v := range []string{"attending", "not-attending"} {
		if err := ValidateAttendance(v); err != nil {
			t.Errorf("ValidateAttendance(%q) error = %v", v, err)
		}
	}
	for _, v := range []string{"", "maybe", "Attending"} {
		if err := ValidateAttendance(v); err == nil {
			t.Errorf("ValidateAttendance(%q) should fail", v)
		}
	}
	for _, v := range []string{"", "chicken", "beef", "vegetarian"} {
		if err := ValidateMealChoice(v); err != nil {
			t.Errorf("ValidateMealChoice(%q) error = %v", v, err)
		}
	}
	if err := ValidateMealChoice("fish"); err == nil {
		t.Error("ValidateMealChoice(\"fish\") should fail")
	}
}

func TestValidateMaxLength(t *testing.T) {
	if err := ValidateMaxLength("message", strings.Repeat("x", MaxMessageLength), MaxMessageLength); err != nil {
		t.Errorf("message at limit should pass, got %v", err)
	}
	err := ValidateMaxLength("message", strings.Repeat("x", MaxMessageLength+1), MaxMessageLength)
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "message" {
		t.Errorf("Field = %q, want message", ve.Field)
	}
}

func TestAsValidationErrorWrapped(t *testing.T) {
	err := fmt.Errorf("submit: %w", ValidationError{Field: "mealChoice", Message: "required"})
	ve, ok := AsValidationError(err)
	if !ok || ve.Field != "mealChoice" {
		t.Errorf("AsValidationError() = %v, %v", ve, ok)
	}
	if _, ok := AsValidationError(errors.New("plain")); ok {
		t.Error("plain error should not be a ValidationError")
	}
}
