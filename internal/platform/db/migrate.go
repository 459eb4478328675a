package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every pending migration. With rollback set it reverts
// only the latest applied version.
func Migrate(ctx context.Context, pool *pgxpool.Pool, rollback bool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrationFiles)
	goose.SetTableName(migrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	command := "up"
	if rollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "command", command, "version", version)
	return nil
}
