package postgres

import (
	"context"
	"time"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	"bonsai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	var sessionM model.SessionModel
	_, err := query(ctx, repo.db, Statement{
		Text: `
			INSERT INTO sessions (token, user_id, expires_at)
			VALUES (?, ?, ?)
			RETURNING *`,
		Values: []any{session.Token, session.UserID, session.ExpiresAt},
	}, &sessionM)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindValidByToken returns the session for token unless it has expired at now.
func (repo *sessionRepository) FindValidByToken(ctx context.Context, token string, now time.Time) (*entity.Session, error) {
	var sessionM model.SessionModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			SELECT * FROM sessions
			WHERE token = ? AND expires_at > ?
			LIMIT 1`,
		Values: []any{token, now},
	}, &sessionM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session by token")
	}
	if rows == 0 {
		return nil, repository.ErrSessionNotFound
	}

	return toSessionDomain(&sessionM), nil
}

// Renew slides expires_at forward, provided the session is still valid at now.
// expires_at never moves backwards, and moves by at least one microsecond.
func (repo *sessionRepository) Renew(ctx context.Context, id uuid.UUID, expiresAt, now time.Time) (*entity.Session, error) {
	var sessionM model.SessionModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			UPDATE sessions
			SET expires_at = GREATEST(?, expires_at + interval '1 microsecond'), updated_at = ?
			WHERE id = ? AND expires_at > ?
			RETURNING *`,
		Values: []any{expiresAt, now, id, now},
	}, &sessionM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to renew session")
	}
	if rows == 0 {
		return nil, repository.ErrSessionNotFound
	}

	return toSessionDomain(&sessionM), nil
}

// Expire backdates expires_at so the session can no longer be found as valid.
// The row is kept.
func (repo *sessionRepository) Expire(ctx context.Context, id uuid.UUID, expiredAt time.Time) (*entity.Session, error) {
	var sessionM model.SessionModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			UPDATE sessions
			SET expires_at = ?, updated_at = timezone('utc', now())
			WHERE id = ?
			RETURNING *`,
		Values: []any{expiredAt, id},
	}, &sessionM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to expire session")
	}
	if rows == 0 {
		return nil, repository.ErrSessionNotFound
	}

	return toSessionDomain(&sessionM), nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        data.ID,
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
