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

// activationTokenRepository implements the domain.ActivationTokenRepository interface.
type activationTokenRepository struct {
	db *gorm.DB
}

// NewActivationTokenRepository is the constructor for activationTokenRepository.
func NewActivationTokenRepository(db *gorm.DB) repository.ActivationTokenRepository {
	return &activationTokenRepository{db: db}
}

// Create inserts a new, unused token.
func (repo *activationTokenRepository) Create(ctx context.Context, token *entity.ActivationToken) error {
	var tokenM model.ActivationTokenModel
	_, err := query(ctx, repo.db, Statement{
		Text: `
			INSERT INTO user_activation_tokens (user_id, expires_at)
			VALUES (?, ?)
			RETURNING *`,
		Values: []any{token.UserID, token.ExpiresAt},
	}, &tokenM)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activation token")
	}

	token.ID = tokenM.ID
	token.UsedAt = tokenM.UsedAt
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindValidByID returns the token if it is unused and unexpired at now.
func (repo *activationTokenRepository) FindValidByID(ctx context.Context, id uuid.UUID, now time.Time) (*entity.ActivationToken, error) {
	var tokenM model.ActivationTokenModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			SELECT * FROM user_activation_tokens
			WHERE id = ? AND expires_at > ? AND used_at IS NULL
			LIMIT 1`,
		Values: []any{id, now},
	}, &tokenM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find activation token")
	}
	if rows == 0 {
		return nil, repository.ErrActivationTokenNotFound
	}

	return toActivationTokenDomain(&tokenM), nil
}

// MarkUsed is the compare-and-swap on used_at. The predicate is re-evaluated by
// the database at write time, so of several concurrent callers only one gets a row back.
func (repo *activationTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) (*entity.ActivationToken, error) {
	var tokenM model.ActivationTokenModel
	rows, err := query(ctx, repo.db, Statement{
		Text: `
			UPDATE user_activation_tokens
			SET used_at = ?, updated_at = ?
			WHERE id = ? AND used_at IS NULL AND expires_at > ?
			RETURNING *`,
		Values: []any{now, now, id, now},
	}, &tokenM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark activation token as used")
	}
	if rows == 0 {
		return nil, repository.ErrActivationTokenNotFound
	}

	return toActivationTokenDomain(&tokenM), nil
}

func toActivationTokenDomain(data *model.ActivationTokenModel) *entity.ActivationToken {
	return &entity.ActivationToken{
		ID:        data.ID,
		UserID:    data.UserID,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
