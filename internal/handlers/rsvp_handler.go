package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"weddingrsvp/internal/security"
	"weddingrsvp/internal/service"
	"weddingrsvp/internal/sessionstore"
)

// RSVPHandler serves the guest RSVP flow over a cookie-keyed session
type RSVPHandler struct {
	collector *service.CollectorService
	sessions  sessionstore.Store
	csrf      *security.CSRFGenerator
	ttl       time.Duration
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(collector *service.CollectorService, sessions sessionstore.Store, csrf *security.CSRFGenerator, ttl time.Duration) *RSVPHandler {
	return &RSVPHandler{
		collector: collector,
		sessions:  sessions,
		csrf:      csrf,
		ttl:       ttl,
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

type memberUpdateRequest struct {
	Attendance          *string `json:"attendance"`
	MealChoice          *string `json:"mealChoice"`
	DietaryRestrictions *string `json:"dietaryRestrictions"`
}

type messageRequest struct {
	Message string `json:"message"`
}

// GetSession returns the visitor's session, starting one when needed
func (h *RSVPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	if !h.saveSession(w, r, sess) {
		return
	}
	h.respondWithSession(w, r, sess)
}

// Search looks the visitor up by name
func (h *RSVPHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	err := h.collector.Search(r.Context(), sess, req.Query)
	if err != nil && errors.Is(err, service.ErrInvalidTransition) {
		respondWithServiceError(w, r, err)
		return
	}

	// Failed searches still change the session: it returns to searching with an error
	if !h.saveSession(w, r, sess) {
		return
	}
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	h.respondWithSession(w, r, sess)
}

// SelectMember includes a party member in the submission
func (h *RSVPHandler) SelectMember(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sess *service.Session) error {
		return sess.SelectMember(r.PathValue("id"))
	})
}

// DeselectMember excludes a party member from the submission
func (h *RSVPHandler) DeselectMember(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sess *service.Session) error {
		return sess.DeselectMember(r.PathValue("id"))
	})
}

// UpdateMember sets any of attendance, meal choice and dietary notes for a member.
// Attendance is applied first so switching to not-attending clears the other fields.
func (h *RSVPHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req memberUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	guestID := r.PathValue("id")

	h.mutate(w, r, func(sess *service.Session) error {
		if req.Attendance != nil {
			if err := sess.SetAttendance(guestID, *req.Attendance); err != nil {
				return err
			}
		}
		if req.MealChoice != nil {
			if err := sess.SetMealChoice(guestID, *req.MealChoice); err != nil {
				return err
			}
		}
		if req.DietaryRestrictions != nil {
			if err := sess.SetDietaryRestrictions(guestID, *req.DietaryRestrictions); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateMessage sets the party-wide message
func (h *RSVPHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.mutate(w, r, func(sess *service.Session) error {
		return sess.SetMessage(req.Message)
	})
}

// Back returns to the search step
func (h *RSVPHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sess *service.Session) error {
		return sess.Back()
	})
}

// Submit records the party's responses
func (h *RSVPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	result, err := h.collector.Submit(r.Context(), sess)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	// The RSVPs are already stored; a lost session only costs the visitor the confirmation state
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("session_id", sess.ID).Msg("Failed to save session after submit")
	}
	writeJSON(w, http.StatusOK, newSubmitView(result))
}

// mutate applies fn to the session and persists it only when fn succeeds
func (h *RSVPHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(*service.Session) error) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	if err := fn(sess); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	sess.UpdatedAt = time.Now()
	if !h.saveSession(w, r, sess) {
		return
	}
	h.respondWithSession(w, r, sess)
}

// loadSession returns the session named by the cookie. A missing or expired session
// is replaced with a fresh one; an existing cookie keeps its ID so CSRF tokens stay valid.
func (h *RSVPHandler) loadSession(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	cookie, err := r.Cookie(security.SessionCookieName)
	if err != nil || cookie.Value == "" {
		sess := service.NewSession(security.NewSessionID())
		http.SetCookie(w, security.SessionCookie(r, sess.ID, h.ttl))
		return sess, true
	}

	sess, err := h.sessions.Get(r.Context(), cookie.Value)
	switch {
	case errors.Is(err, sessionstore.ErrNotFound):
		return service.NewSession(cookie.Value), true
	case err != nil:
		respondWithError(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable, "Error loading session", err)
		return nil, false
	}
	return sess, true
}

func (h *RSVPHandler) saveSession(w http.ResponseWriter, r *http.Request, sess *service.Session) bool {
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		respondWithError(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable, "Error saving session", err)
		return false
	}
	return true
}

func (h *RSVPHandler) respondWithSession(w http.ResponseWriter, r *http.Request, sess *service.Session) {
	token, err := h.csrf.GenerateToken(sess.ID)
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error generating CSRF token", err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, token))
}
