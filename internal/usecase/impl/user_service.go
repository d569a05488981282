package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bonsai/config"
	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/domain/authorization"
	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	"bonsai/internal/domain/service"
	"bonsai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	activation    usecase.ActivationUsecase
	clock         service.Clock
	activationTTL time.Duration
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Activation usecase.ActivationUsecase
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		activation:    params.Activation,
		clock:         params.Clock,
		activationTTL: params.Config.Auth.ActivationTTL,
		logger:        params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user and its activation token atomically. A mail
// failure is logged but does not undo the registration.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Password: hashed,
		Features: entity.DefaultUserFeatures(),
	}
	var token *entity.ActivationToken

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureUsernameAvailable(ctx, userRepo, user.Username, uuid.Nil); err != nil {
			return err
		}
		if err := ensureEmailAvailable(ctx, userRepo, user.Email, uuid.Nil); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		token = newActivationToken(user.ID, srv.clock(), srv.activationTTL)
		if err := repoFactory.ActivationTokenRepo().Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to create activation token")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	if err := srv.activation.SendEmail(ctx, user, token); err != nil {
		srv.log(ctx).Error("Failed to send activation email", slog.Any("user_id", user.ID), slog.Any("error", err))
	}

	return user, nil
}

// FindByUsername looks a user up ignoring case.
func (srv *userService) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}

// Update applies patch to the user named username. The caller must be that
// user or hold update:user:others.
func (srv *userService) Update(ctx context.Context, caller *entity.User, username string, patch *entity.UserPatch) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by username")
		}

		if err := authorization.Require(caller, entity.FeatureUpdateUser, target); err != nil {
			return err
		}

		if patch.Username != nil {
			target.Username = strings.TrimSpace(*patch.Username)
			if err := ensureUsernameAvailable(ctx, userRepo, target.Username, target.ID); err != nil {
				return err
			}
		}
		if patch.Email != nil {
			target.Email = strings.TrimSpace(*patch.Email)
			if err := ensureEmailAvailable(ctx, userRepo, target.Email, target.ID); err != nil {
				return err
			}
		}
		if patch.Password != nil {
			hashed, err := srv.hasher.Hash(*patch.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			target.Password = hashed
		}

		updated, err = userRepo.Update(ctx, target)
		if err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Any("user_id", updated.ID), slog.Any("caller_id", caller.ID))

	return updated, nil
}

// ensureUsernameAvailable fails with ErrUsernameInUse unless username is free
// or already belongs to owner.
func ensureUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string, owner uuid.UUID) error {
	existing, err := userRepo.FindByUsername(ctx, username)

	return checkAvailable(existing, err, owner, domainerrors.ErrUsernameInUse, "failed to check username")
}

// ensureEmailAvailable fails with ErrEmailInUse unless email is free or
// already belongs to owner.
func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string, owner uuid.UUID) error {
	existing, err := userRepo.FindByEmail(ctx, email)

	return checkAvailable(existing, err, owner, domainerrors.ErrEmailInUse, "failed to check email")
}

func checkAvailable(existing *entity.User, err error, owner uuid.UUID, inUse error, failure string) error {
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, failure)
	}
	if owner != uuid.Nil && existing.ID == owner {
		return nil
	}

	return inUse
}
