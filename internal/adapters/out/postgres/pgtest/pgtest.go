// Package pgtest starts a migrated PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"time"

	postgresadapter "logistics/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies the embedded migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgresadapter.Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table and resets identities.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).Exec(`TRUNCATE TABLE
		tracking_checkpoints, shipments, orders, notifications, document_numbers, warehouses
		RESTART IDENTITY CASCADE`).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
