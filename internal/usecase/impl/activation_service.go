package impl

import (
	"context"
	"fmt"
	"log/slog"
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

const (
	activationEmailSubject = "Ative seu cadastro no MeuBonsai.App"
	activationPath         = "/cadastro/ativar/"
)

// activationService implements the ActivationUsecase interface.
type activationService struct {
	txManager repository.TransactionManager
	tokenRepo repository.ActivationTokenRepository
	userRepo  repository.UserRepository
	mailer    service.Mailer
	clock     service.Clock
	ttl       time.Duration
	origin    string
	mailFrom  string
	logger    *slog.Logger
}

// ActivationServiceParams holds dependencies for ActivationService, injected by Fx.
type ActivationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TokenRepo repository.ActivationTokenRepository
	UserRepo  repository.UserRepository
	Mailer    service.Mailer
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewActivationService is the constructor for activationService.
func NewActivationService(params ActivationServiceParams) usecase.ActivationUsecase {
	return &activationService{
		txManager: params.TxManager,
		tokenRepo: params.TokenRepo,
		userRepo:  params.UserRepo,
		mailer:    params.Mailer,
		clock:     params.Clock,
		ttl:       params.Config.Auth.ActivationTTL,
		origin:    params.Config.WebServer.Origin,
		mailFrom:  params.Config.Mail.From,
		logger:    params.Logger,
	}
}

func (srv *activationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newActivationToken builds an unsaved token for userID expiring ttl after now.
func newActivationToken(userID uuid.UUID, now time.Time, ttl time.Duration) *entity.ActivationToken {
	return &entity.ActivationToken{
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
	}
}

// Issue persists a fresh token for userID. Delivering it is the caller's job.
func (srv *activationService) Issue(ctx context.Context, userID uuid.UUID) (*entity.ActivationToken, error) {
	token := newActivationToken(userID, srv.clock(), srv.ttl)
	if err := srv.tokenRepo.Create(ctx, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "cannot issue activation token")
		}

		return nil, errors.Wrap(err, "failed to create activation token")
	}

	return token, nil
}

// FindValid returns the token if unused and unexpired. Expired, used and
// unknown tokens all yield ErrActivationTokenNotFound.
func (srv *activationService) FindValid(ctx context.Context, tokenID uuid.UUID) (*entity.ActivationToken, error) {
	return findValidActivationToken(ctx, srv.tokenRepo, tokenID, srv.clock())
}

// Consume flips used_at exactly once.
func (srv *activationService) Consume(ctx context.Context, tokenID uuid.UUID) (*entity.ActivationToken, error) {
	return consumeActivationToken(ctx, srv.tokenRepo, tokenID, srv.clock())
}

// Promote swaps the default feature set of userID for the activated one.
func (srv *activationService) Promote(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.promote(ctx, srv.userRepo, userID)
}

// Activate runs FindValid, Consume and Promote in one transaction, so a
// rejected promotion leaves the token unused.
func (srv *activationService) Activate(ctx context.Context, tokenID uuid.UUID) (*entity.ActivationToken, error) {
	var consumed *entity.ActivationToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.ActivationTokenRepo()
		now := srv.clock()

		if _, err := findValidActivationToken(ctx, tokenRepo, tokenID, now); err != nil {
			return err
		}

		token, err := consumeActivationToken(ctx, tokenRepo, tokenID, now)
		if err != nil {
			return err
		}

		if _, err := srv.promote(ctx, repoFactory.UserRepo(), token.UserID); err != nil {
			return err
		}

		consumed = token

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User activated", slog.Any("user_id", consumed.UserID), slog.Any("token_id", consumed.ID))

	return consumed, nil
}

// SendEmail mails the activation link for token to user.
func (srv *activationService) SendEmail(ctx context.Context, user *entity.User, token *entity.ActivationToken) error {
	email := &service.Email{
		From:    srv.mailFrom,
		To:      user.Email,
		Subject: activationEmailSubject,
		Text:    activationEmailText(user.Username, srv.activationURL(token.ID)),
	}

	if err := srv.mailer.Send(ctx, email); err != nil {
		return errors.Wrap(err, "failed to send activation email")
	}

	return nil
}

func (srv *activationService) activationURL(tokenID uuid.UUID) string {
	return srv.origin + activationPath + tokenID.String()
}

func activationEmailText(username, url string) string {
	return fmt.Sprintf(`%s, clique no link abaixo para ativar seu cadastro no MeuBonsai.App

%s

Atenciosamente,

Equipe MeuBonsai.App
`, username, url)
}

func (srv *activationService) promote(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "cannot promote user")
		}

		return nil, errors.Wrap(err, "failed to find user to promote")
	}

	// Eligibility may have been revoked between issuance and consumption.
	allowed, err := authorization.Can(user, entity.FeatureReadActivationToken, nil)
	if err != nil {
		return nil, err
	}
	if !allowed {
		srv.log(ctx).Warn("Promotion rejected", slog.Any("user_id", userID))

		return nil, domainerrors.ErrActivationNotAllowed
	}

	promoted, err := userRepo.SetFeatures(ctx, userID, entity.ActivatedUserFeatures())
	if err != nil {
		return nil, errors.Wrap(err, "failed to set activated features")
	}

	return promoted, nil
}

func findValidActivationToken(ctx context.Context, repo repository.ActivationTokenRepository, id uuid.UUID, now time.Time) (*entity.ActivationToken, error) {
	token, err := repo.FindValidByID(ctx, id, now)
	if err != nil {
		if errors.Is(err, repository.ErrActivationTokenNotFound) {
			return nil, domainerrors.ErrActivationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find activation token")
	}

	return token, nil
}

func consumeActivationToken(ctx context.Context, repo repository.ActivationTokenRepository, id uuid.UUID, now time.Time) (*entity.ActivationToken, error) {
	token, err := repo.MarkUsed(ctx, id, now)
	if err != nil {
		if errors.Is(err, repository.ErrActivationTokenNotFound) {
			return nil, domainerrors.ErrActivationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to consume activation token")
	}

	return token, nil
}
