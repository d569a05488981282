// Package migrations holds the embedded schema migrations and the goose-backed migrator.
package migrations

import (
	"context"
	"embed"
	"log/slog"
	"path"
	"strings"

	"bonsai/internal/domain/entity"
	"bonsai/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed *.sql
var Migrations embed.FS

type provider interface {
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
}

type gooseMigrator struct {
	provider provider
	logger   *slog.Logger
}

// NewMigrator builds a goose provider over the embedded SQL files.
func NewMigrator(db *gorm.DB, logger *slog.Logger) (service.Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	p, err := goose.NewProvider(goose.DialectPostgres, sqlDB, Migrations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration provider")
	}

	return &gooseMigrator{provider: p, logger: logger}, nil
}

// ListPending is a dry run: it reports what RunPending would apply.
func (m *gooseMigrator) ListPending(ctx context.Context) ([]entity.Migration, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migration status")
	}

	pending := make([]entity.Migration, 0, len(statuses))
	for _, status := range statuses {
		if status.State == goose.StatePending {
			pending = append(pending, toMigration(status.Source))
		}
	}

	return pending, nil
}

// RunPending applies pending migrations in version order.
func (m *gooseMigrator) RunPending(ctx context.Context) ([]entity.Migration, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run pending migrations")
	}

	applied := make([]entity.Migration, 0, len(results))
	for _, result := range results {
		migration := toMigration(result.Source)
		m.logger.InfoContext(ctx, "Migration applied",
			slog.String("name", migration.Name),
			slog.Int64("timestamp", migration.Timestamp),
			slog.Duration("duration", result.Duration),
		)
		applied = append(applied, migration)
	}

	return applied, nil
}

func toMigration(source *goose.Source) entity.Migration {
	name := strings.TrimSuffix(path.Base(source.Path), path.Ext(source.Path))
	if _, rest, found := strings.Cut(name, "_"); found {
		name = rest
	}

	return entity.Migration{
		Path:      source.Path,
		Name:      name,
		Timestamp: source.Version,
	}
}
