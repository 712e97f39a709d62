package service

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/validation"
)

// ReconciliationService builds the administrator view of guests and responses
type ReconciliationService struct {
	guests GuestStore
	rsvps  RSVPStore
	options
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(guests GuestStore, rsvps RSVPStore, opts ...Option) *ReconciliationService {
	return &ReconciliationService{
		guests:  guests,
		rsvps:   rsvps,
		options: newOptions(opts),
	}
}

// BuildAggregate loads guests and RSVPs concurrently and reconciles them
func (s *ReconciliationService) BuildAggregate(ctx context.Context) (*models.Aggregate, error) {
	ctx, span := tracer.Start(ctx, "ReconciliationService.BuildAggregate")
	defer span.End()

	var guests []models.Guest
	var rsvps []models.RSVP

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guests, err = s.guests.ListAll()
		if err != nil {
			return storeError("failed to load guests", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rsvps, err = s.rsvps.ListAll()
		if err != nil {
			return storeError("failed to load rsvps", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	agg := Reconcile(validGuests(s.log, guests), s.validRSVPs(rsvps))
	if len(agg.Orphaned) > 0 {
		s.log.Warn().Int("orphaned", len(agg.Orphaned)).Msg("RSVPs reference deleted guests")
	}

	span.SetAttributes(
		attribute.Int("aggregate.guests", agg.TotalGuests()),
		attribute.Int("aggregate.attending", agg.Attending),
	)
	return agg, nil
}

func (s *ReconciliationService) validRSVPs(rsvps []models.RSVP) []models.RSVP {
	valid := make([]models.RSVP, 0, len(rsvps))
	for _, r := range rsvps {
		if err := r.Validate(); err != nil {
			s.log.Warn().Err(err).Str("rsvp_id", r.ID).Msg("Skipping invalid rsvp record")
			continue
		}
		valid = append(valid, r)
	}
	return valid
}

// Reconcile joins guests with their earliest RSVP. Guests keep their given order;
// RSVPs referencing unknown guests are returned as orphaned. It has no side effects.
func Reconcile(guests []models.Guest, rsvps []models.RSVP) *models.Aggregate {
	ordered := make([]models.RSVP, len(rsvps))
	copy(ordered, rsvps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	known := make(map[string]bool, len(guests))
	for _, g := range guests {
		known[g.ID] = true
	}

	agg := &models.Aggregate{}
	first := make(map[string]models.RSVP)
	for _, r := range ordered {
		if !known[r.GuestID] {
			agg.Orphaned = append(agg.Orphaned, r)
			continue
		}
		if _, seen := first[r.GuestID]; !seen {
			first[r.GuestID] = r
		}
	}

	partyIndex := make(map[string]int)
	guestParty := make(map[string]int, len(guests))
	for _, g := range guests {
		resp := models.GuestResponse{Guest: g, Status: models.StatusPending}

		if r, ok := first[g.ID]; ok {
			createdAt := r.CreatedAt
			resp.MealChoice = r.MealChoice
			resp.DietaryRestrictions = r.DietaryRestrictions
			resp.Message = r.Message
			resp.RespondedAt = &createdAt
			if r.IsAttending() {
				resp.Status = models.StatusAttending
			} else {
				resp.Status = models.StatusNotAttending
			}
		}

		switch resp.Status {
		case models.StatusAttending:
			agg.Attending++
			tallyMeal(&agg.Meals, resp.MealChoice)
		case models.StatusNotAttending:
			agg.NotAttending++
		default:
			agg.Pending++
		}

		agg.Guests = append(agg.Guests, resp)

		i, ok := partyIndex[g.PartyID]
		if !ok {
			i = len(agg.Parties)
			partyIndex[g.PartyID] = i
			agg.Parties = append(agg.Parties, models.PartySummary{PartyID: g.PartyID})
		}
		guestParty[g.ID] = i
		p := &agg.Parties[i]
		p.Members = append(p.Members, resp)
		if p.PartyCode == "" {
			p.PartyCode = g.PartyCode
		}
	}

	// First non-empty message per party, in RSVP creation order
	for _, r := range ordered {
		chosen, ok := first[r.GuestID]
		if !ok || chosen.ID != r.ID || r.Message == "" {
			continue
		}
		if p := &agg.Parties[guestParty[r.GuestID]]; p.Message == "" {
			p.Message = r.Message
		}
	}

	return agg
}

func tallyMeal(t *models.MealTally, meal string) {
	switch meal {
	case validation.MealChicken:
		t.Chicken++
	case validation.MealBeef:
		t.Beef++
	case validation.MealVegetarian:
		t.Vegetarian++
	default:
		t.NotSelected++
	}
}
