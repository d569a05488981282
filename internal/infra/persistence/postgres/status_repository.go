package postgres

import (
	"context"

	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"

	"gorm.io/gorm"
)

type databaseStatusRow struct {
	Version           string
	MaxConnections    int
	OpenedConnections int
}

// statusRepository implements the domain.StatusRepository interface.
type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository is the constructor for statusRepository.
func NewStatusRepository(db *gorm.DB) repository.StatusRepository {
	return &statusRepository{db: db}
}

// DatabaseStatus reads the server version, connection limit and the number of
// connections currently open against this database.
func (repo *statusRepository) DatabaseStatus(ctx context.Context) (*entity.DatabaseStatus, error) {
	var row databaseStatusRow
	_, err := query(ctx, repo.db, Statement{
		Text: `
			SELECT
				current_setting('server_version') AS version,
				current_setting('max_connections')::int AS max_connections,
				(SELECT COUNT(*)::int FROM pg_stat_activity WHERE datname = current_database()) AS opened_connections`,
	}, &row)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read database status")
	}

	return &entity.DatabaseStatus{
		Version:           row.Version,
		MaxConnections:    row.MaxConnections,
		OpenedConnections: row.OpenedConnections,
	}, nil
}
