package service

import (
	"context"

	"bonsai/internal/domain/entity"
)

// Migrator applies schema migrations.
type Migrator interface {
	// ListPending returns migrations not yet applied, without applying them.
	ListPending(ctx context.Context) ([]entity.Migration, error)

	// RunPending applies every pending migration and returns those applied.
	RunPending(ctx context.Context) ([]entity.Migration, error)
}
