package impl

import (
	"context"
	"testing"

	"bonsai/internal/domain/entity"
	mockRepo "bonsai/internal/mocks/repository"
	mockService "bonsai/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_GetStatus(t *testing.T) {
	statusRepo := mockRepo.NewMockStatusRepository(t)
	clock := newFakeClock()
	service := NewStatusService(statusRepo, clock.Now)

	ctx := context.Background()
	statusRepo.EXPECT().DatabaseStatus(ctx).Return(&entity.DatabaseStatus{
		Version:           "16.2",
		MaxConnections:    100,
		OpenedConnections: 3,
	}, nil)

	status, err := service.GetStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, clock.Now(), status.UpdatedAt)
	assert.Equal(t, "16.2", status.Dependencies.Database.Version)
	assert.Equal(t, 100, status.Dependencies.Database.MaxConnections)
	assert.Equal(t, 3, status.Dependencies.Database.OpenedConnections)
}

func TestStatusService_GetStatus_StoreFailure(t *testing.T) {
	statusRepo := mockRepo.NewMockStatusRepository(t)
	service := NewStatusService(statusRepo, newFakeClock().Now)

	ctx := context.Background()
	storeErr := errors.New("too many clients")
	statusRepo.EXPECT().DatabaseStatus(ctx).Return(nil, storeErr)

	_, err := service.GetStatus(ctx)

	assert.ErrorIs(t, err, storeErr)
}

func TestMigrationService(t *testing.T) {
	ctx := context.Background()
	pending := []entity.Migration{{Path: "20240911000001_create_users.sql", Name: "create_users", Timestamp: 20240911000001}}

	t.Run("list pending", func(t *testing.T) {
		migrator := mockService.NewMockMigrator(t)
		service := NewMigrationService(migrator, newDiscardLogger())
		migrator.EXPECT().ListPending(ctx).Return(pending, nil)

		result, err := service.ListPending(ctx)

		require.NoError(t, err)
		assert.Equal(t, pending, result)
	})

	t.Run("run pending", func(t *testing.T) {
		migrator := mockService.NewMockMigrator(t)
		service := NewMigrationService(migrator, newDiscardLogger())
		migrator.EXPECT().RunPending(ctx).Return(pending, nil)

		result, err := service.RunPending(ctx)

		require.NoError(t, err)
		assert.Equal(t, pending, result)
	})

	t.Run("run failure", func(t *testing.T) {
		migrator := mockService.NewMockMigrator(t)
		service := NewMigrationService(migrator, newDiscardLogger())
		runErr := errors.New("syntax error at or near")
		migrator.EXPECT().RunPending(ctx).Return(nil, runErr)

		_, err := service.RunPending(ctx)

		assert.ErrorIs(t, err, runErr)
	})
}
