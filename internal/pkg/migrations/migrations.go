package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"zapshift/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// Up применяет встроенные миграции к базе пула.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys, goose.WithDisableGlobalRegistry(true))
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.Info("migration applied",
			logger.NewField("version", result.Source.Version),
			logger.NewField("path", result.Source.Path),
			logger.NewField("duration", result.Duration),
		)
	}
	return nil
}
