package repository

import (
	"context"
	"time"

	"bonsai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session matches, including expired ones.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists sessions. Every method is a single statement.
type SessionRepository interface {
	// Create inserts a new session and fills in its generated ID and timestamps.
	Create(ctx context.Context, session *entity.Session) error

	// FindValidByToken returns the session holding token if it expires after now.
	FindValidByToken(ctx context.Context, token string, now time.Time) (*entity.Session, error)

	// Renew moves expires_at of a session still valid at now to expiresAt, or
	// just past its current value when expiresAt would not extend it.
	Renew(ctx context.Context, id uuid.UUID, expiresAt, now time.Time) (*entity.Session, error)

	// Expire sets expires_at of a session to expiredAt.
	Expire(ctx context.Context, id uuid.UUID, expiredAt time.Time) (*entity.Session, error)
}
