package usecase

import (
	"context"

	"bonsai/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase manages opaque, sliding-expiry sessions.
type SessionUsecase interface {
	Create(ctx context.Context, userID uuid.UUID) (*entity.Session, error)
	FindValidByToken(ctx context.Context, token string) (*entity.Session, error)
	Renew(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	Expire(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	// Login authenticates the credentials and opens a session for their owner.
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// ResolveCaller turns a session token into its user, renewing the session on the way.
	ResolveCaller(ctx context.Context, token string) (*entity.User, *entity.Session, error)
}
