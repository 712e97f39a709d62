package service

import (
	"time"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/validation"
)

// SessionState is a step of the guest RSVP flow
type SessionState string

const (
	StateSearching  SessionState = "searching"
	StatePartyFound SessionState = "party_found"
	StateSubmitted  SessionState = "submitted"
)

// MemberResponse is the in-progress answer for one party member
type MemberResponse struct {
	Selected            bool   `json:"selected"`
	Attendance          string `json:"attendance,omitempty"`
	MealChoice          string `json:"mealChoice,omitempty"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
}

// Session holds one visitor's RSVP flow. It is only mutated through its methods
// and serializes to JSON for the session store.
type Session struct {
	ID        string                     `json:"id"`
	State     SessionState               `json:"state"`
	Party     *models.Party              `json:"party,omitempty"`
	Responses map[string]*MemberResponse `json:"responses,omitempty"`
	Message   string                     `json:"message,omitempty"`
	Error     string                     `json:"error,omitempty"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

// NewSession starts a flow in the searching state
func NewSession(id string) *Session {
	return &Session{ID: id, State: StateSearching}
}

// Response returns the in-progress answer for a member, or nil
func (s *Session) Response(guestID string) *MemberResponse {
	return s.Responses[guestID]
}

// SelectedMembers returns the selected members in party order
func (s *Session) SelectedMembers() []models.Guest {
	if s.Party == nil {
		return nil
	}
	var selected []models.Guest
	for _, m := range s.Party.Members {
		if r := s.Responses[m.ID]; r != nil && r.Selected {
			selected = append(selected, m)
		}
	}
	return selected
}

// SelectMember includes a member in the submission, defaulting them to attending
func (s *Session) SelectMember(guestID string) error {
	r, err := s.member(guestID)
	if err != nil {
		return err
	}
	if !r.Selected {
		r.Selected = true
		r.Attendance = models.AttendanceAttending
	}
	s.Error = ""
	return nil
}

// DeselectMember excludes a member and clears their answers
func (s *Session) DeselectMember(guestID string) error {
	r, err := s.member(guestID)
	if err != nil {
		return err
	}
	*r = MemberResponse{}
	s.Error = ""
	return nil
}

// SetAttendance records attendance; switching to not-attending clears meal and dietary text
func (s *Session) SetAttendance(guestID, attendance string) error {
	r, err := s.selectedMember(guestID)
	if err != nil {
		return err
	}
	if err := validation.ValidateAttendance(attendance); err != nil {
		return err
	}
	r.Attendance = attendance
	if attendance == models.AttendanceNotAttending {
		r.MealChoice = ""
		r.DietaryRestrictions = ""
	}
	s.Error = ""
	return nil
}

// SetMealChoice records a meal for an attending member
func (s *Session) SetMealChoice(guestID, meal string) error {
	r, err := s.attendingMember(guestID, "mealChoice")
	if err != nil {
		return err
	}
	if err := validation.ValidateMealChoice(meal); err != nil {
		return err
	}
	r.MealChoice = meal
	s.Error = ""
	return nil
}

// SetDietaryRestrictions records dietary notes for an attending member
func (s *Session) SetDietaryRestrictions(guestID, text string) error {
	r, err := s.attendingMember(guestID, "dietaryRestrictions")
	if err != nil {
		return err
	}
	r.DietaryRestrictions = text
	s.Error = ""
	return nil
}

// SetMessage records the party-wide message
func (s *Session) SetMessage(text string) error {
	if s.State != StatePartyFound {
		return ErrInvalidTransition
	}
	s.Message = text
	return nil
}

// Back returns to searching and discards in-progress selections
func (s *Session) Back() error {
	if s.State != StatePartyFound {
		return ErrInvalidTransition
	}
	s.reset(StateSearching)
	return nil
}

func (s *Session) partyFound(party *models.Party) {
	s.reset(StatePartyFound)
	s.Party = party
	s.Responses = make(map[string]*MemberResponse, len(party.Members))
	for _, m := range party.Members {
		s.Responses[m.ID] = &MemberResponse{}
	}
}

func (s *Session) reset(state SessionState) {
	s.State = state
	s.Party = nil
	s.Responses = nil
	s.Message = ""
	s.Error = ""
}

func (s *Session) member(guestID string) (*MemberResponse, error) {
	if s.State != StatePartyFound {
		return nil, ErrInvalidTransition
	}
	if s.Party == nil || !s.Party.HasMember(guestID) {
		return nil, ErrUnknownMember
	}
	r := s.Responses[guestID]
	if r == nil {
		r = &MemberResponse{}
		if s.Responses == nil {
			s.Responses = make(map[string]*MemberResponse)
		}
		s.Responses[guestID] = r
	}
	return r, nil
}

func (s *Session) selectedMember(guestID string) (*MemberResponse, error) {
	r, err := s.member(guestID)
	if err != nil {
		return nil, err
	}
	if !r.Selected {
		return nil, ErrMemberNotSelected
	}
	return r, nil
}

func (s *Session) attendingMember(guestID, field string) (*MemberResponse, error) {
	r, err := s.selectedMember(guestID)
	if err != nil {
		return nil, err
	}
	if r.Attendance == models.AttendanceNotAttending {
		return nil, validation.ValidationError{Field: field, Message: "only applies to guests who are attending"}
	}
	return r, nil
}
