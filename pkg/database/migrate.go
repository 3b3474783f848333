package database

import (
	"context"
	"database/sql"
	"fmt"

	"flight-booking/pkg/database/migrations"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrate applies the embedded migrations. Every statement is IF NOT EXISTS and
// goose tracks applied versions, so it is safe to call on every start.
func Migrate(ctx context.Context, db *DB, log *zap.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(db.pool)
	defer sqlDB.Close()

	return runMigrations(ctx, sqlDB, log)
}

func runMigrations(ctx context.Context, sqlDB *sql.DB, log *zap.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := gooseUp(ctx, sqlDB, "."); err != nil {
		log.Error("Failed to apply migrations", zap.Error(err))
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("Database schema is up to date")
	return nil
}
