package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"weddingrsvp/internal/models"
)

// GuestStore is the persistence contract for the guest directory
type GuestStore interface {
	ListAll() ([]models.Guest, error)
	ListByParty(partyID string) ([]models.Guest, error)
	GetByID(id string) (*models.Guest, error)
	Create(guest *models.Guest) error
	CreateBatch(guests []models.Guest) error
	Delete(id string) (bool, error)
	PartyExists(partyID string) (bool, error)
	PartyCode(partyID string) (string, error)
	FindPartyIDByCode(code string) (string, error)
	UpdatePartyCode(partyID, code string) (int64, error)
}

// RSVPStore is the persistence contract for RSVP records
type RSVPStore interface {
	ListAll() ([]models.RSVP, error)
	CreateBatch(rsvps []models.RSVP) error
}

// PartyResolver finds the party a free-text name belongs to
type PartyResolver interface {
	Resolve(ctx context.Context, query string) (*models.Party, error)
}

// Notifier delivers the best-effort submission notification
type Notifier interface {
	SendRSVPNotification(ctx context.Context, n models.RSVPNotification) error
}
