package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/partycode"
	"weddingrsvp/internal/validation"
)

var bulkNameSeparator = regexp.MustCompile(`[\n,]+`)

// DirectoryService handles guest directory administration
type DirectoryService struct {
	guests GuestStore
	options
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(guests GuestStore, opts ...Option) *DirectoryService {
	return &DirectoryService{
		guests:  guests,
		options: newOptions(opts),
	}
}

// ListAll returns every valid guest ordered by party then name
func (s *DirectoryService) ListAll() ([]models.Guest, error) {
	guests, err := s.guests.ListAll()
	if err != nil {
		return nil, storeError("failed to list guests", err)
	}
	return validGuests(s.log, guests), nil
}

// Parties returns the directory grouped into parties
func (s *DirectoryService) Parties() ([]models.Party, error) {
	guests, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	return GroupParties(guests), nil
}

// AddGuest adds a guest to an existing party, or to a new party when partyID is empty.
// Joining an existing party inherits its code.
func (s *DirectoryService) AddGuest(name, email, partyID string) (*models.Guest, error) {
	guest := models.Guest{
		ID:        uuid.NewString(),
		PartyID:   strings.TrimSpace(partyID),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: s.now().UTC(),
	}

	if guest.PartyID == "" {
		guest.PartyID = uuid.NewString()
	} else {
		if err := validation.ValidateUUID("partyId", guest.PartyID); err != nil {
			return nil, err
		}
		exists, err := s.guests.PartyExists(guest.PartyID)
		if err != nil {
			return nil, storeError("failed to check party", err)
		}
		if !exists {
			return nil, ErrPartyNotFound
		}
		code, err := s.guests.PartyCode(guest.PartyID)
		if err != nil {
			return nil, storeError("failed to get party code", err)
		}
		guest.PartyCode = code
	}

	if err := guest.Validate(); err != nil {
		return nil, err
	}

	if err := s.guests.Create(&guest); err != nil {
		return nil, storeError("failed to create guest", err)
	}

	s.log.Info().Str("guest_id", guest.ID).Str("party_id", guest.PartyID).Msg("Guest added")
	return &guest, nil
}

// BulkAddParty creates one new party containing every name, in a single transaction
func (s *DirectoryService) BulkAddParty(names []string) ([]models.Guest, error) {
	partyID := uuid.NewString()
	now := s.now().UTC()

	var guests []models.Guest
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		guest := models.Guest{
			ID:        uuid.NewString(),
			PartyID:   partyID,
			Name:      name,
			CreatedAt: now,
		}
		if err := guest.Validate(); err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}

	if len(guests) == 0 {
		return nil, validation.ValidationError{Field: "names", Message: "at least one name is required"}
	}

	if err := s.guests.CreateBatch(guests); err != nil {
		return nil, storeError("failed to create party", err)
	}

	s.log.Info().Str("party_id", partyID).Int("guests", len(guests)).Msg("Party created")
	return guests, nil
}

// ParseBulkNames splits admin input on newlines and commas, dropping blanks
func ParseBulkNames(text string) []string {
	var names []string
	for _, part := range bulkNameSeparator.Split(text, -1) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// DeleteGuest removes a guest. Their RSVPs remain and surface as orphaned.
func (s *DirectoryService) DeleteGuest(id string) error {
	deleted, err := s.guests.Delete(id)
	if err != nil {
		return storeError("failed to delete guest", err)
	}
	if !deleted {
		return ErrNoSuchGuest
	}
	s.log.Info().Str("guest_id", id).Msg("Guest deleted")
	return nil
}

// UpdatePartyCode assigns an administrator-chosen code to every member of a party.
// The format is checked before case folding, so lowercase input is rejected.
// The uniqueness check and the write are not atomic.
func (s *DirectoryService) UpdatePartyCode(partyID, code string) (string, error) {
	code = strings.TrimSpace(code)
	if !partycode.IsValidFormat(code) {
		return "", ErrInvalidPartyCode
	}
	code = strings.ToUpper(code)

	if err := s.requireParty(partyID); err != nil {
		return "", err
	}

	owner, err := s.guests.FindPartyIDByCode(code)
	if err != nil {
		return "", storeError("failed to check party code", err)
	}
	if owner != "" && owner != partyID {
		return "", ErrPartyCodeTaken
	}

	return code, s.assignCode(partyID, code)
}

// GeneratePartyCode assigns a random unused code to a party. After
// partycode.MaxGenerateAttempts collisions it falls back to a timestamp code.
func (s *DirectoryService) GeneratePartyCode(partyID string) (string, error) {
	if err := s.requireParty(partyID); err != nil {
		return "", err
	}

	code := ""
	for i := 0; i < partycode.MaxGenerateAttempts; i++ {
		candidate, err := partycode.Generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate party code: %w", err)
		}
		owner, err := s.guests.FindPartyIDByCode(candidate)
		if err != nil {
			return "", storeError("failed to check party code", err)
		}
		if owner == "" || owner == partyID {
			code = candidate
			break
		}
	}

	if code == "" {
		code = partycode.TimestampCode(s.now())
		s.log.Warn().Str("party_id", partyID).Str("code", code).Msg("Party code attempts exhausted, using timestamp code")
	}

	return code, s.assignCode(partyID, code)
}

func (s *DirectoryService) requireParty(partyID string) error {
	exists, err := s.guests.PartyExists(partyID)
	if err != nil {
		return storeError("failed to check party", err)
	}
	if !exists {
		return ErrPartyNotFound
	}
	return nil
}

func (s *DirectoryService) assignCode(partyID, code string) error {
	if _, err := s.guests.UpdatePartyCode(partyID, code); err != nil {
		return storeError("failed to update party code", err)
	}
	s.log.Info().Str("party_id", partyID).Str("code", code).Msg("Party code assigned")
	return nil
}

// GroupParties groups guests by party ID, preserving first-seen order of parties and members
func GroupParties(guests []models.Guest) []models.Party {
	var parties []models.Party
	index := make(map[string]int)

	for _, guest := range guests {
		i, ok := index[guest.PartyID]
		if !ok {
			i = len(parties)
			index[guest.PartyID] = i
			parties = append(parties, models.Party{ID: guest.PartyID})
		}
		p := &parties[i]
		p.Members = append(p.Members, guest)
		if p.Code == "" && guest.PartyCode != "" {
			p.Code = guest.PartyCode
			p.Label = guest.PartyCode
		}
	}

	return parties
}

// validGuests drops rows that fail boundary validation
func validGuests(log zerolog.Logger, guests []models.Guest) []models.Guest {
	valid := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if err := g.Validate(); err != nil {
			log.Warn().Err(err).Str("guest_id", g.ID).Msg("Skipping invalid guest record")
			continue
		}
		valid = append(valid, g)
	}
	return valid
}
