package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"weddingrsvp/internal/metrics"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const AdminUserContextKey ContextKey = "admin_user"

// RoleChecker reports whether a user holds a role
type RoleChecker interface {
	HasRole(userID, role string) (bool, error)
}

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens *security.TokenVerifier
	roles  RoleChecker
	csrf   *security.CSRFGenerator
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.TokenVerifier, roles RoleChecker, csrf *security.CSRFGenerator) *Middleware {
	return &Middleware{
		tokens: tokens,
		roles:  roles,
		csrf:   csrf,
	}
}

// RequireAdmin requires a valid bearer token whose subject holds the admin role
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.tokens.Verify(security.BearerToken(r.Header.Get("Authorization")))
		if err != nil {
			respondWithError(w, r, http.StatusUnauthorized, ErrUnauthorized, "Rejected admin token", err)
			return
		}

		isAdmin, err := m.roles.HasRole(userID, models.RoleAdmin)
		if err != nil {
			respondWithError(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable, "Error checking admin role", err)
			return
		}
		if !isAdmin {
			zerolog.Ctx(r.Context()).Warn().Str("user_id", userID).Msg("Non-admin user denied")
			respondWithError(w, r, http.StatusForbidden, ErrForbidden, "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), AdminUserContextKey, userID)
		ctx = zerolog.Ctx(ctx).With().Str("admin_id", userID).Logger().WithContext(ctx)
		next(w, r.WithContext(ctx))
	}
}

// CSRFProtect requires the X-CSRF-Token header to match the guest session cookie
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil || !m.csrf.ValidateToken(cookie.Value, r.Header.Get(security.CSRFHeader)) {
			respondWithError(w, r, http.StatusForbidden, ErrInvalidCSRFToken, "", nil)
			return
		}
		next(w, r)
	}
}

// GetAdminUserID returns the authenticated admin's user ID, or ""
func GetAdminUserID(ctx context.Context) string {
	userID, _ := ctx.Value(AdminUserContextKey).(string)
	return userID
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Logging attaches a request-scoped zerolog logger, then logs and measures each request
func Logging(log zerolog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := log.With().
				Str("request_id", uuid.NewString()).
				Str("remote_ip", security.ClientIP(r)).
				Logger()
			r = r.WithContext(reqLog.WithContext(r.Context()))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			// The mux fills in Pattern on the request it was handed
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			duration := time.Since(start)
			m.ObserveHTTPRequest(r.Method, route, rec.status, duration)

			reqLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", duration).
				Msg("HTTP request")
		})
	}
}
