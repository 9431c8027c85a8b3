// Package postgres provides the GORM-based Unit of Work and schema migrations
// for the logistics store.
//
// A unit of work hands out repositories bound to its transaction, so every
// write a command handler makes between Begin and Commit lands atomically:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
//	    return err
//	}
//	if _, err := uow.TrackingRepository().Append(ctx, checkpoint); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance serves a single goroutine. Concurrent operations
// create their own instances from the factory.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/notificationrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work, keyed by
// "<kind>:<id>".
type TrackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over db.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records which
// aggregates were written through it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts the transaction. Calling it again on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active,
// which makes a deferred Rollback after Commit harmless. Tracked aggregates
// are discarded.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns the order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ShipmentRepository returns the shipment repository bound to the current transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// TrackAggregate registers an aggregate written by one of this unit's repositories.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// TrackedAggregates lists the aggregates written since the unit of work was created.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	out := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

// conn is the active transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
