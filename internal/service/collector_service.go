package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"weddingrsvp/internal/models"
	"weddingrsvp/internal/validation"
)

const notificationTimeout = 10 * time.Second

// User-facing messages stored on the session after a failed search
const (
	msgGuestNotFound    = "We couldn't find your invitation. Please check the spelling of your name or contact us."
	msgEmptyQuery       = "Please enter your name."
	msgStoreUnavailable = "Something went wrong. Please try again in a moment."
)

// SubmitResult describes a successful submission
type SubmitResult struct {
	Records    []models.RSVP
	PartyLabel string
}

// CollectorService drives the guest RSVP flow on top of Session
type CollectorService struct {
	resolver    PartyResolver
	rsvps       RSVPStore
	notifier    Notifier
	notifyEmail string
	options
}

// NewCollectorService creates a collector. notifier may be nil.
func NewCollectorService(resolver PartyResolver, rsvps RSVPStore, notifier Notifier, notifyEmail string, opts ...Option) *CollectorService {
	return &CollectorService{
		resolver:    resolver,
		rsvps:       rsvps,
		notifier:    notifier,
		notifyEmail: notifyEmail,
		options:     newOptions(opts),
	}
}

// Search resolves query and moves the session to party_found on success.
// On failure the session stays in searching with a user-visible error.
func (s *CollectorService) Search(ctx context.Context, sess *Session, query string) error {
	if sess.State == StatePartyFound {
		return ErrInvalidTransition
	}

	party, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		sess.reset(StateSearching)
		sess.Error = searchErrorMessage(err)
		sess.UpdatedAt = s.now()
		return err
	}

	sess.partyFound(party)
	sess.UpdatedAt = s.now()
	return nil
}

// Submit validates the selected members' answers and writes one RSVP per member
// as a single batch. A failed write leaves the session untouched for resubmission.
func (s *CollectorService) Submit(ctx context.Context, sess *Session) (*SubmitResult, error) {
	ctx, span := tracer.Start(ctx, "CollectorService.Submit")
	defer span.End()

	if sess.State != StatePartyFound {
		return nil, ErrInvalidTransition
	}

	selected := sess.SelectedMembers()
	if len(selected) == 0 {
		s.metrics.IncrementSubmission("validation_error")
		return nil, ErrNoMembersSelected
	}

	records := s.buildRecords(sess, selected)

	for i := range records {
		if err := records[i].Validate(); err != nil {
			s.metrics.IncrementSubmission("validation_error")
			return nil, err
		}
	}

	for i, rec := range records {
		if rec.IsAttending() && rec.MealChoice == "" {
			s.metrics.IncrementSubmission("validation_error")
			return nil, fmt.Errorf("%w: %w", ErrMissingMealChoice, validation.ValidationError{
				Field:   "mealChoice",
				Message: "Please select a meal choice for " + selected[i].Name,
			})
		}
	}

	span.SetAttributes(attribute.Int("rsvp.records", len(records)))

	if err := s.rsvps.CreateBatch(records); err != nil {
		s.metrics.IncrementSubmission("store_error")
		recordSpanError(span, err)
		s.log.Error().Err(err).Str("party_id", sess.Party.ID).Msg("Failed to save RSVPs")
		return nil, storeError("failed to save rsvps", err)
	}

	for _, rec := range records {
		s.metrics.AddRSVPRecord(rec.Attendance)
	}
	s.metrics.IncrementSubmission("success")
	s.log.Info().Str("party_id", sess.Party.ID).Int("records", len(records)).Msg("RSVP submitted")

	s.notify(ctx, selected, records, sess.Message)

	result := &SubmitResult{Records: records, PartyLabel: sess.Party.Label}
	sess.reset(StateSubmitted)
	sess.UpdatedAt = s.now()
	return result, nil
}

// buildRecords mirrors each selected member's answers; meal and dietary text are kept only when attending
func (s *CollectorService) buildRecords(sess *Session, selected []models.Guest) []models.RSVP {
	now := s.now().UTC()
	records := make([]models.RSVP, 0, len(selected))

	for _, member := range selected {
		r := sess.Response(member.ID)
		rec := models.RSVP{
			ID:         uuid.NewString(),
			GuestID:    member.ID,
			Attendance: r.Attendance,
			Message:    sess.Message,
			CreatedAt:  now,
		}
		if rec.Attendance == "" {
			rec.Attendance = models.AttendanceAttending
		}
		if rec.IsAttending() {
			rec.MealChoice = r.MealChoice
			rec.DietaryRestrictions = r.DietaryRestrictions
		}
		records = append(records, rec)
	}

	return records
}

// notify sends the submission summary. Failures are logged and swallowed.
func (s *CollectorService) notify(ctx context.Context, members []models.Guest, records []models.RSVP, message string) {
	if s.notifier == nil || s.notifyEmail == "" {
		return
	}

	n := models.RSVPNotification{Message: message, RecipientEmail: s.notifyEmail}
	for i, rec := range records {
		n.Guests = append(n.Guests, models.NotificationGuest{
			Name:                members[i].Name,
			Attendance:          rec.Attendance,
			MealChoice:          rec.MealChoice,
			DietaryRestrictions: rec.DietaryRestrictions,
		})
	}

	// The visitor may disconnect once their RSVP is saved
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	if err := s.notifier.SendRSVPNotification(ctx, n); err != nil {
		s.metrics.IncrementNotificationFailure()
		s.log.Warn().Err(err).Int("guests", len(n.Guests)).Msg("RSVP notification failed")
	}
}

func searchErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		return msgEmptyQuery
	case errors.Is(err, ErrGuestNotFound):
		return msgGuestNotFound
	default:
		return msgStoreUnavailable
	}
}
