package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"weddingrsvp/internal/matching"
	"weddingrsvp/internal/models"
)

// ResolverService maps a visitor's self-entered name onto their party
type ResolverService struct {
	guests    GuestStore
	matcher   *matching.Matcher
	missDelay time.Duration
	options
}

// NewResolverService creates a resolver. Misses are answered only after missDelay.
func NewResolverService(guests GuestStore, matcher *matching.Matcher, missDelay time.Duration, opts ...Option) *ResolverService {
	return &ResolverService{
		guests:    guests,
		matcher:   matcher,
		missDelay: missDelay,
		options:   newOptions(opts),
	}
}

// Resolve returns the party of the single best-matching guest.
// It never reveals more than one candidate; an empty directory is reported as a miss.
func (s *ResolverService) Resolve(ctx context.Context, query string) (*models.Party, error) {
	ctx, span := tracer.Start(ctx, "ResolverService.Resolve")
	defer span.End()

	start := s.now()
	party, outcome, err := s.resolve(ctx, query)
	if outcome == "miss" {
		s.waitMissDelay(ctx)
	}

	s.metrics.IncrementResolve(outcome)
	s.metrics.ObserveResolveLatency(s.now().Sub(start))
	span.SetAttributes(attribute.String("resolve.outcome", outcome))

	if err != nil {
		if outcome == "error" {
			recordSpanError(span, err)
			s.log.Error().Err(err).Msg("Guest lookup failed")
		}
		return nil, err
	}
	return party, nil
}

func (s *ResolverService) resolve(ctx context.Context, query string) (*models.Party, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, "empty", ErrEmptyQuery
	}

	guests, err := s.guests.ListAll()
	if err != nil {
		return nil, "error", storeError("failed to load guests", err)
	}
	guests = validGuests(s.log, guests)

	names := make([]string, len(guests))
	for i, g := range guests {
		names[i] = g.Name
	}

	best, ok := s.matcher.Best(query, names)
	if !ok {
		s.log.Debug().Int("candidates", len(guests)).Msg("No guest matched")
		return nil, "miss", ErrGuestNotFound
	}
	matched := guests[best.Index]
	s.log.Debug().Str("guest_id", matched.ID).Float64("distance", best.Distance).Msg("Guest matched")

	if err := ctx.Err(); err != nil {
		return nil, "error", err
	}

	members, err := s.guests.ListByParty(matched.PartyID)
	if err != nil {
		return nil, "error", storeError("failed to load party", err)
	}
	members = validGuests(s.log, members)

	party := &models.Party{ID: matched.PartyID, Members: members}
	for _, m := range members {
		if m.PartyCode != "" {
			party.Code = m.PartyCode
			break
		}
	}
	party.Label = matched.PartyCode
	if party.Label == "" {
		party.Label = party.Code
	}

	return party, "match", nil
}

// waitMissDelay slows failed lookups so the directory cannot be enumerated quickly
func (s *ResolverService) waitMissDelay(ctx context.Context) {
	if s.missDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.missDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// IsResolutionMiss reports whether err means no party was found
func IsResolutionMiss(err error) bool {
	return errors.Is(err, ErrGuestNotFound)
}
