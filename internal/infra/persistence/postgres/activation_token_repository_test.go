package postgres

import (
	"context"
	"testing"
	"time"

	"bonsai/internal/domain/entity"
	"bonsai/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationTokenRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationTokenRepository(db)
	id, userID := uuid.New(), uuid.New()
	expiresAt := fixedNow.Add(15 * time.Minute)

	mock.ExpectQuery(`INSERT INTO user_activation_tokens \(user_id, expires_at\)`).
		WithArgs(userID, expiresAt).
		WillReturnRows(sqlmock.NewRows(activationTokenColumns).
			AddRow(id.String(), nil, userID.String(), expiresAt, fixedNow, fixedNow))

	token := &entity.ActivationToken{UserID: userID, ExpiresAt: expiresAt}
	require.NoError(t, repo.Create(context.Background(), token))

	assert.Equal(t, id, token.ID)
	assert.Nil(t, token.UsedAt)
	assert.True(t, token.IsValidAt(fixedNow))
}

func TestActivationTokenRepository_FindValidByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationTokenRepository(db)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM user_activation_tokens\s+WHERE id = \$1 AND expires_at > \$2 AND used_at IS NULL`).
		WithArgs(id, fixedNow).
		WillReturnRows(sqlmock.NewRows(activationTokenColumns).
			AddRow(id.String(), nil, userID.String(), fixedNow.Add(time.Minute), fixedNow, fixedNow))

	token, err := repo.FindValidByID(context.Background(), id, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, userID, token.UserID)
}

func TestActivationTokenRepository_FindValidByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationTokenRepository(db)

	mock.ExpectQuery(`SELECT \* FROM user_activation_tokens`).
		WillReturnRows(sqlmock.NewRows(activationTokenColumns))

	_, err := repo.FindValidByID(context.Background(), uuid.New(), fixedNow)
	assert.ErrorIs(t, err, repository.ErrActivationTokenNotFound)
}

func TestActivationTokenRepository_MarkUsed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationTokenRepository(db)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`UPDATE user_activation_tokens\s+SET used_at = \$1, updated_at = \$2\s+WHERE id = \$3 AND used_at IS NULL AND expires_at > \$4\s+RETURNING \*`).
		WithArgs(fixedNow, fixedNow, id, fixedNow).
		WillReturnRows(sqlmock.NewRows(activationTokenColumns).
			AddRow(id.String(), fixedNow, userID.String(), fixedNow.Add(time.Minute), fixedNow, fixedNow))

	token, err := repo.MarkUsed(context.Background(), id, fixedNow)
	require.NoError(t, err)
	require.NotNil(t, token.UsedAt)
	assert.Equal(t, fixedNow, *token.UsedAt)
	assert.False(t, token.IsValidAt(fixedNow))
}

func TestActivationTokenRepository_MarkUsed_ZeroRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivationTokenRepository(db)

	mock.ExpectQuery(`UPDATE user_activation_tokens`).
		WillReturnRows(sqlmock.NewRows(activationTokenColumns))

	token, err := repo.MarkUsed(context.Background(), uuid.New(), fixedNow)
	assert.Nil(t, token)
	assert.ErrorIs(t, err, repository.ErrActivationTokenNotFound)
}
