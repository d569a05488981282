package impl

import (
	"context"

	"bonsai/internal/domain/entity"
	"bonsai/internal/domain/repository"
	"bonsai/internal/domain/service"
	"bonsai/internal/usecase"

	"github.com/pkg/errors"
)

// statusService implements the StatusUsecase interface.
type statusService struct {
	statusRepo repository.StatusRepository
	clock      service.Clock
}

// NewStatusService is the constructor for statusService.
func NewStatusService(statusRepo repository.StatusRepository, clock service.Clock) usecase.StatusUsecase {
	return &statusService{statusRepo: statusRepo, clock: clock}
}

// GetStatus snapshots the database figures.
func (srv *statusService) GetStatus(ctx context.Context) (*entity.Status, error) {
	database, err := srv.statusRepo.DatabaseStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read database status")
	}

	return &entity.Status{
		UpdatedAt: srv.clock(),
		Dependencies: entity.StatusDependencies{
			Database: *database,
		},
	}, nil
}
