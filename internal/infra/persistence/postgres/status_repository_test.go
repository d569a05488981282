package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRepository_DatabaseStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatusRepository(db)

	mock.ExpectQuery(`current_setting\('server_version'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"version", "max_connections", "opened_connections"}).
			AddRow("16.0", 100, 3))

	status, err := repo.DatabaseStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "16.0", status.Version)
	assert.Equal(t, 100, status.MaxConnections)
	assert.Equal(t, 3, status.OpenedConnections)
}

func TestStatusRepository_DatabaseStatus_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatusRepository(db)

	mock.ExpectQuery(`current_setting`).WillReturnError(errors.New("connection refused"))

	status, err := repo.DatabaseStatus(context.Background())
	assert.Nil(t, status)
	assert.Error(t, err)
}
