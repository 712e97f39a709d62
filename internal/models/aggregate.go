package models

import "time"

// GuestStatus is a guest's reconciled response state
type GuestStatus string

const (
	StatusAttending    GuestStatus = "attending"
	StatusNotAttending GuestStatus = "not_attending"
	StatusPending      GuestStatus = "pending"
)

// GuestResponse joins a guest with its reconciled RSVP
type GuestResponse struct {
	Guest               Guest
	Status              GuestStatus
	MealChoice          string
	DietaryRestrictions string
	Message             string
	RespondedAt         *time.Time // nil while pending
}

// MealTally counts meals across attending guests only
type MealTally struct {
	Chicken     int
	Beef        int
	Vegetarian  int
	NotSelected int
}

// Total returns the sum of every bucket
func (m MealTally) Total() int {
	return m.Chicken + m.Beef + m.Vegetarian + m.NotSelected
}

// PartySummary is one party in the administrator view
type PartySummary struct {
	PartyID   string
	PartyCode string
	Members   []GuestResponse
	Message   string // first non-empty message among members
}

// Aggregate is the reconciled administrator view of guests and RSVPs
type Aggregate struct {
	Guests       []GuestResponse
	Parties      []PartySummary
	Attending    int
	NotAttending int
	Pending      int
	Meals        MealTally
	Orphaned     []RSVP // RSVPs whose guest no longer exists
}

// TotalGuests returns the number of guests in the directory
func (a *Aggregate) TotalGuests() int {
	return len(a.Guests)
}
