package repository

import (
	"context"

	"bonsai/internal/domain/entity"
)

// StatusRepository reads diagnostic figures from the database server.
type StatusRepository interface {
	// DatabaseStatus reports server version, connection limit and open connections.
	DatabaseStatus(ctx context.Context) (*entity.DatabaseStatus, error)
}
