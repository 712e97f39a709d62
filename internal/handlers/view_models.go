package handlers

import (
	"fmt"
	"time"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/service"
)

// Guest flow

type MemberView struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Selected            bool   `json:"selected"`
	Attendance          string `json:"attendance,omitempty"`
	MealChoice          string `json:"mealChoice,omitempty"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
}

type PartyView struct {
	ID      string       `json:"id"`
	Label   string       `json:"label,omitempty"`
	Heading string       `json:"heading"`
	Size    int          `json:"size"`
	Members []MemberView `json:"members"`
}

type SessionView struct {
	State     service.SessionState `json:"state"`
	Party     *PartyView           `json:"party,omitempty"`
	Message   string               `json:"message,omitempty"`
	Error     string               `json:"error,omitempty"`
	CSRFToken string               `json:"csrfToken,omitempty"`
}

type SubmitView struct {
	State      service.SessionState `json:"state"`
	PartyLabel string               `json:"partyLabel,omitempty"`
	Recorded   int                  `json:"recorded"`
	Attending  int                  `json:"attending"`
}

func newSessionView(sess *service.Session, csrfToken string) SessionView {
	view := SessionView{
		State:     sess.State,
		Message:   sess.Message,
		Error:     sess.Error,
		CSRFToken: csrfToken,
	}
	if sess.Party == nil {
		return view
	}

	party := &PartyView{
		ID:      sess.Party.ID,
		Label:   sess.Party.Label,
		Heading: partyHeading(sess.Party),
		Size:    sess.Party.Size(),
		Members: make([]MemberView, 0, sess.Party.Size()),
	}
	for _, m := range sess.Party.Members {
		mv := MemberView{ID: m.ID, Name: m.Name}
		if r := sess.Response(m.ID); r != nil {
			mv.Selected = r.Selected
			mv.Attendance = r.Attendance
			mv.MealChoice = r.MealChoice
			mv.DietaryRestrictions = r.DietaryRestrictions
		}
		party.Members = append(party.Members, mv)
	}
	view.Party = party
	return view
}

// partyHeading renders "Your Party: CODE (2 people)"
func partyHeading(p *models.Party) string {
	noun := "people"
	if p.Size() == 1 {
		noun = "person"
	}
	if p.Label == "" {
		return fmt.Sprintf("Your Party (%d %s)", p.Size(), noun)
	}
	return fmt.Sprintf("Your Party: %s (%d %s)", p.Label, p.Size(), noun)
}

func newSubmitView(result *service.SubmitResult) SubmitView {
	view := SubmitView{
		State:      service.StateSubmitted,
		PartyLabel: result.PartyLabel,
		Recorded:   len(result.Records),
	}
	for _, r := range result.Records {
		if r.IsAttending() {
			view.Attending++
		}
	}
	return view
}

// Admin

type GuestView struct {
	ID        string    `json:"id"`
	PartyID   string    `json:"partyId"`
	PartyCode string    `json:"partyCode,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type PartyListView struct {
	ID      string      `json:"id"`
	Code    string      `json:"code,omitempty"`
	Members []GuestView `json:"members"`
}

type DirectoryView struct {
	Guests  []GuestView     `json:"guests"`
	Parties []PartyListView `json:"parties"`
}

type GuestResponseView struct {
	Guest               GuestView          `json:"guest"`
	Status              models.GuestStatus `json:"status"`
	MealChoice          string             `json:"mealChoice,omitempty"`
	DietaryRestrictions string             `json:"dietaryRestrictions,omitempty"`
	Message             string             `json:"message,omitempty"`
	RespondedAt         *time.Time         `json:"respondedAt,omitempty"`
}

type PartySummaryView struct {
	PartyID   string              `json:"partyId"`
	PartyCode string              `json:"partyCode,omitempty"`
	Message   string              `json:"message,omitempty"`
	Members   []GuestResponseView `json:"members"`
}

type MealTallyView struct {
	Chicken     int `json:"chicken"`
	Beef        int `json:"beef"`
	Vegetarian  int `json:"vegetarian"`
	NotSelected int `json:"not_selected"`
}

type AggregateView struct {
	TotalGuests  int                 `json:"totalGuests"`
	Attending    int                 `json:"attending"`
	NotAttending int                 `json:"notAttending"`
	Pending      int                 `json:"pending"`
	Meals        MealTallyView       `json:"meals"`
	Guests       []GuestResponseView `json:"guests"`
	Parties      []PartySummaryView  `json:"parties"`
	Orphaned     int                 `json:"orphaned"`
}

type PartyCodeView struct {
	PartyID string `json:"partyId"`
	Code    string `json:"code"`
}

func newGuestView(g models.Guest) GuestView {
	return GuestView{
		ID:        g.ID,
		PartyID:   g.PartyID,
		PartyCode: g.PartyCode,
		Name:      g.Name,
		Email:     g.Email,
		CreatedAt: g.CreatedAt,
	}
}

func newGuestViews(guests []models.Guest) []GuestView {
	views := make([]GuestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, newGuestView(g))
	}
	return views
}

func newDirectoryView(guests []models.Guest, parties []models.Party) DirectoryView {
	view := DirectoryView{
		Guests:  newGuestViews(guests),
		Parties: make([]PartyListView, 0, len(parties)),
	}
	for _, p := range parties {
		view.Parties = append(view.Parties, PartyListView{ID: p.ID, Code: p.Code, Members: newGuestViews(p.Members)})
	}
	return view
}

func newGuestResponseView(r models.GuestResponse) GuestResponseView {
	return GuestResponseView{
		Guest:               newGuestView(r.Guest),
		Status:              r.Status,
		MealChoice:          r.MealChoice,
		DietaryRestrictions: r.DietaryRestrictions,
		Message:             r.Message,
		RespondedAt:         r.RespondedAt,
	}
}

func newAggregateView(agg *models.Aggregate) AggregateView {
	view := AggregateView{
		TotalGuests:  agg.TotalGuests(),
		Attending:    agg.Attending,
		NotAttending: agg.NotAttending,
		Pending:      agg.Pending,
		Meals:        MealTallyView(agg.Meals),
		Guests:       make([]GuestResponseView, 0, len(agg.Guests)),
		Parties:      make([]PartySummaryView, 0, len(agg.Parties)),
		Orphaned:     len(agg.Orphaned),
	}
	for _, g := range agg.Guests {
		view.Guests = append(view.Guests, newGuestResponseView(g))
	}
	for _, p := range agg.Parties {
		ps := PartySummaryView{PartyID: p.PartyID, PartyCode: p.PartyCode, Message: p.Message}
		for _, m := range p.Members {
			ps.Members = append(ps.Members, newGuestResponseView(m))
		}
		view.Parties = append(view.Parties, ps)
	}
	return view
}
