package impl

import (
	"context"
	"log/slog"

	deliverycontext "bonsai/internal/delivery/context"
	"bonsai/internal/domain/entity"
	"bonsai/internal/domain/service"
	"bonsai/internal/usecase"

	"github.com/pkg/errors"
)

// migrationService implements the MigrationUsecase interface.
type migrationService struct {
	migrator service.Migrator
	logger   *slog.Logger
}

// NewMigrationService is the constructor for migrationService.
func NewMigrationService(migrator service.Migrator, logger *slog.Logger) usecase.MigrationUsecase {
	return &migrationService{migrator: migrator, logger: logger}
}

// ListPending reports migrations that RunPending would apply.
func (srv *migrationService) ListPending(ctx context.Context) ([]entity.Migration, error) {
	pending, err := srv.migrator.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending migrations")
	}

	return pending, nil
}

// RunPending applies pending migrations.
func (srv *migrationService) RunPending(ctx context.Context) ([]entity.Migration, error) {
	applied, err := srv.migrator.RunPending(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to run migrations", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to run pending migrations")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Migrations run", slog.Int("count", len(applied)))

	return applied, nil
}
