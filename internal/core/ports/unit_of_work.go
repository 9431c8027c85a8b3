package ports

import (
	"context"
)

// UnitOfWorkFactory creates independent units of work.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repositories to a single transaction. Repositories obtained
// before Begin run on the pool.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	ShipmentRepository() ShipmentRepository

	TrackingRepository() TrackingRepository

	NotificationRepository() NotificationRepository
}
