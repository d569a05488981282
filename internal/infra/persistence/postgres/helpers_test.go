package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var userColumns = []string{"id", "username", "email", "password", "features", "created_at", "updated_at"}

func userRow(id uuid.UUID, username, email string, features string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id.String(), username, email, "$2a$04$hash", []byte(features), fixedNow, fixedNow)
}

var sessionColumns = []string{"id", "token", "user_id", "expires_at", "created_at", "updated_at"}

var activationTokenColumns = []string{"id", "used_at", "user_id", "expires_at", "created_at", "updated_at"}
