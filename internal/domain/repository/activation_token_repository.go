package repository

import (
	"context"
	"time"

	"bonsai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrActivationTokenNotFound is returned when a token does not exist, is expired, or was already used.
var ErrActivationTokenNotFound = errors.New("activation token not found")

// ActivationTokenRepository persists activation tokens.
type ActivationTokenRepository interface {
	// Create inserts a new token and fills in its generated ID and timestamps.
	Create(ctx context.Context, token *entity.ActivationToken) error

	// FindValidByID returns the token if it is unused and expires after now.
	FindValidByID(ctx context.Context, id uuid.UUID, now time.Time) (*entity.ActivationToken, error)

	// MarkUsed sets used_at to now if, at the moment of the write, the token is
	// still unused and unexpired. Zero matching rows yields ErrActivationTokenNotFound.
	MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) (*entity.ActivationToken, error)
}
