package models

import (
	"time"

	"weddingrsvp/internal/validation"
)

// Guest represents one invited person in the guest directory
type Guest struct {
	ID        string
	PartyID   string
	PartyCode string // empty when the party has no code
	Name      string
	Email     string // optional
	CreatedAt time.Time
}

// Validate checks a guest record read from or written to the store
func (g *Guest) Validate() error {
	if err := validation.ValidateUUID("id", g.ID); err != nil {
		return err
	}
	if err := validation.ValidateUUID("partyId", g.PartyID); err != nil {
		return err
	}
	if err := validation.ValidateName(g.Name); err != nil {
		return err
	}
	return validation.ValidateOptionalEmail(g.Email)
}
