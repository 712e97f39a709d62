package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"weddingrsvp/internal/models"
)

// fakeGuestStore is an in-memory GuestStore
type fakeGuestStore struct {
	mu     sync.Mutex
	guests []models.Guest
}

func newFakeGuestStore(guests ...models.Guest) *fakeGuestStore {
	return &fakeGuestStore{guests: guests}
}

func (f *fakeGuestStore) ListAll() ([]models.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Guest, len(f.guests))
	copy(out, f.guests)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PartyID != out[j].PartyID {
			return out[i].PartyID < out[j].PartyID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeGuestStore) ListByParty(partyID string) ([]models.Guest, error) {
	all, _ := f.ListAll()
	var out []models.Guest
	for _, g := range all {
		if g.PartyID == partyID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestStore) GetByID(id string) (*models.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.guests {
		if g.ID == id {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestStore) Create(guest *models.Guest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guests = append(f.guests, *guest)
	return nil
}

func (f *fakeGuestStore) CreateBatch(guests []models.Guest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guests = append(f.guests, guests...)
	return nil
}

func (f *fakeGuestStore) Delete(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, g := range f.guests {
		if g.ID == id {
			f.guests = append(f.guests[:i], f.guests[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGuestStore) PartyExists(partyID string) (bool, error) {
	members, _ := f.ListByParty(partyID)
	return len(members) > 0, nil
}

func (f *fakeGuestStore) PartyCode(partyID string) (string, error) {
	members, _ := f.ListByParty(partyID)
	for _, m := range members {
		if m.PartyCode != "" {
			return m.PartyCode, nil
		}
	}
	return "", nil
}

func (f *fakeGuestStore) FindPartyIDByCode(code string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.guests {
		if g.PartyCode != "" && strings.EqualFold(g.PartyCode, code) {
			return g.PartyID, nil
		}
	}
	return "", nil
}

func (f *fakeGuestStore) UpdatePartyCode(partyID, code string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.guests {
		if f.guests[i].PartyID == partyID {
			f.guests[i].PartyCode = code
			n++
		}
	}
	return n, nil
}

// fakeRSVPStore is an in-memory RSVPStore
type fakeRSVPStore struct {
	mu    sync.Mutex
	rsvps []models.RSVP
}

func (f *fakeRSVPStore) ListAll() ([]models.RSVP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.RSVP, len(f.rsvps))
	copy(out, f.rsvps)
	return out, nil
}

func (f *fakeRSVPStore) CreateBatch(rsvps []models.RSVP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rsvps = append(f.rsvps, rsvps...)
	return nil
}

func (f *fakeRSVPStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rsvps)
}

var testEpoch = time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)

func newTestGuest(partyID, name, code string) models.Guest {
	return models.Guest{
		ID:        uuid.NewString(),
		PartyID:   partyID,
		PartyCode: code,
		Name:      name,
		CreatedAt: testEpoch,
	}
}
