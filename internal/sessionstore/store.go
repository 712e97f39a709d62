package sessionstore

import (
	"context"
	"errors"

	"weddingrsvp/internal/service"
)

// ErrNotFound is returned for unknown or expired sessions
var ErrNotFound = errors.New("session not found")

// Store persists guest RSVP sessions keyed by their opaque ID
type Store interface {
	Get(ctx context.Context, id string) (*service.Session, error)
	Save(ctx context.Context, sess *service.Session) error
	Delete(ctx context.Context, id string) error
}
