package usecase

import (
	"context"

	"bonsai/internal/domain/entity"
)

// RegisterUserInput carries the fields submitted at sign-up.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// UserUsecase covers registration, lookup and update of users.
type UserUsecase interface {
	// Register creates the user with default features, issues its activation
	// token in the same transaction and mails the activation link.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update applies patch to the user named username on behalf of caller.
	Update(ctx context.Context, caller *entity.User, username string, patch *entity.UserPatch) (*entity.User, error)
}
