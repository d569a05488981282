package usecase

import (
	"context"

	"bonsai/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivationUsecase manages single-use activation tokens.
type ActivationUsecase interface {
	Issue(ctx context.Context, userID uuid.UUID) (*entity.ActivationToken, error)
	FindValid(ctx context.Context, tokenID uuid.UUID) (*entity.ActivationToken, error)
	Consume(ctx context.Context, tokenID uuid.UUID) (*entity.ActivationToken, error)
	Promote(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	SendEmail(ctx context.Context, user *entity.User, token *entity.ActivationToken) error

	// Activate validates, consumes and promotes in one transaction, returning the consumed token.
	Activate(ctx context.Context, tokenID uuid.UUID) (*entity.ActivationToken, error)
}
