package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"logistics/internal/adapters/out/postgres/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// ErrFailedToApplyMigrations wraps any goose failure during Migrate.
var ErrFailedToApplyMigrations = errors.New("failed to apply migrations")

// Migrate applies the embedded schema migrations through the pool behind db.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{logger: logger.With("component", "migrations")})

	if err = goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err = goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

// gooseLogger routes goose's printf output into slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
