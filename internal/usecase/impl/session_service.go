package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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

const sessionTokenBytes = 48

// Logged-out sessions are backdated rather than deleted.
const expiredSessionBackdate = 365 * 24 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo    repository.SessionRepository
	userRepo       repository.UserRepository
	authentication usecase.AuthenticationUsecase
	clock          service.Clock
	ttl            time.Duration
	newToken       func() (string, error)
	logger         *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo    repository.SessionRepository
	UserRepo       repository.UserRepository
	Authentication usecase.AuthenticationUsecase
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo:    params.SessionRepo,
		userRepo:       params.UserRepo,
		authentication: params.Authentication,
		clock:          params.Clock,
		ttl:            params.Config.Auth.SessionTTL,
		newToken:       generateSessionToken,
		logger:         params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// generateSessionToken returns 48 random bytes hex-encoded (96 characters).
func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// Create opens a new session for userID.
func (srv *sessionService) Create(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	token, err := srv.newToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: srv.clock().Add(srv.ttl),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "cannot create session")
		}

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Session created", slog.Any("user_id", userID), slog.Any("session_id", session.ID))

	return session, nil
}

// FindValidByToken returns the session unless it has expired. Expired and
// unknown tokens both yield ErrSessionNotFound.
func (srv *sessionService) FindValidByToken(ctx context.Context, token string) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindValidByToken(ctx, token, srv.clock())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

// Renew moves expires_at to now plus the session TTL, never backwards. The
// token is kept.
func (srv *sessionService) Renew(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	now := srv.clock()

	session, err := srv.sessionRepo.Renew(ctx, sessionID, now.Add(srv.ttl), now)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to renew session")
	}

	return session, nil
}

// Expire ends the session by backdating its expiry.
func (srv *sessionService) Expire(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessionRepo.Expire(ctx, sessionID, srv.clock().Add(-expiredSessionBackdate))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to expire session")
	}

	srv.log(ctx).Info("Session expired", slog.Any("user_id", session.UserID), slog.Any("session_id", session.ID))

	return session, nil
}

// Login authenticates and then requires create:session on the authenticated user.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	user, err := srv.authentication.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	allowed, err := authorization.Can(user, entity.FeatureCreateSession, nil)
	if err != nil {
		return nil, err
	}
	if !allowed {
		srv.log(ctx).Warn("Login rejected", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrLoginNotAllowed
	}

	return srv.Create(ctx, user.ID)
}

// ResolveCaller finds the session for token, renews it and loads its user.
func (srv *sessionService) ResolveCaller(ctx context.Context, token string) (*entity.User, *entity.Session, error) {
	session, err := srv.FindValidByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	renewed, err := srv.Renew(ctx, session.ID)
	if err != nil {
		return nil, nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, renewed.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrSessionNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find session user")
	}

	return user, renewed, nil
}
