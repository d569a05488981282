package postgres

import (
	"context"
	"testing"
	"time"

	"bonsai/internal/domain/entity"
	"bonsai/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	id, userID := uuid.New(), uuid.New()
	expiresAt := fixedNow.Add(30 * 24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO sessions \(token, user_id, expires_at\)`).
		WithArgs("tok", userID, expiresAt).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(id.String(), "tok", userID.String(), expiresAt, fixedNow, fixedNow))

	session := &entity.Session{Token: "tok", UserID: userID, ExpiresAt: expiresAt}
	require.NoError(t, repo.Create(context.Background(), session))

	assert.Equal(t, id, session.ID)
	assert.Equal(t, fixedNow, session.CreatedAt)
}

func TestSessionRepository_Create_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`INSERT INTO sessions`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.Create(context.Background(), &entity.Session{UserID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionRepository_FindValidByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM sessions WHERE token = \$1 AND expires_at > \$2`).
		WithArgs("tok", fixedNow).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(id.String(), "tok", userID.String(), fixedNow.Add(time.Hour), fixedNow, fixedNow))

	session, err := repo.FindValidByToken(context.Background(), "tok", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
}

func TestSessionRepository_FindValidByToken_Expired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM sessions`).
		WithArgs("tok", fixedNow).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	session, err := repo.FindValidByToken(context.Background(), "tok", fixedNow)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Renew(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	id, userID := uuid.New(), uuid.New()
	newExpiry := fixedNow.Add(30 * 24 * time.Hour)

	mock.ExpectQuery(`UPDATE sessions\s+SET expires_at = GREATEST\(\$1, expires_at \+ interval '1 microsecond'\), updated_at = \$2\s+WHERE id = \$3 AND expires_at > \$4`).
		WithArgs(newExpiry, fixedNow, id, fixedNow).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(id.String(), "tok", userID.String(), newExpiry, fixedNow, fixedNow))

	session, err := repo.Renew(context.Background(), id, newExpiry, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, newExpiry, session.ExpiresAt)
}

func TestSessionRepository_Renew_NoLongerValid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`UPDATE sessions`).WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.Renew(context.Background(), uuid.New(), fixedNow.Add(time.Hour), fixedNow)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Expire(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	id, userID := uuid.New(), uuid.New()
	past := fixedNow.AddDate(-1, 0, 0)

	mock.ExpectQuery(`UPDATE sessions\s+SET expires_at = \$1`).
		WithArgs(past, id).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(id.String(), "tok", userID.String(), past, fixedNow, fixedNow))

	session, err := repo.Expire(context.Background(), id, past)
	require.NoError(t, err)
	assert.False(t, session.IsValidAt(fixedNow))
}
