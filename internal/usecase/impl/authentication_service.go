// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	"bonsai/internal/domain/service"
	"bonsai/internal/usecase"

	"github.com/pkg/errors"
)

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthenticationUsecase {
	return &authenticationService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate checks email and password. Both "no such email" and "wrong
// password" return ErrInvalidCredentials itself, so neither message nor kind
// tells them apart. Store and hasher failures propagate.
func (srv *authenticationService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication rejected")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	matched, err := srv.hasher.Verify(password, user.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !matched {
		srv.log(ctx).Warn("Authentication rejected")

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
