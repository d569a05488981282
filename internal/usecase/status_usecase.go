package usecase

import (
	"context"

	"bonsai/internal/domain/entity"
)

// StatusUsecase reports service health.
type StatusUsecase interface {
	GetStatus(ctx context.Context) (*entity.Status, error)
}

// MigrationUsecase lists and applies schema migrations.
type MigrationUsecase interface {
	ListPending(ctx context.Context) ([]entity.Migration, error)
	RunPending(ctx context.Context) ([]entity.Migration, error)
}
