// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/domain/model/sequence"
	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TrackingRepoFactory provides access to the append-only tracking log within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// NotificationRepoFactory provides access to notification records within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipmentUoW covers a shipment row and its tracking log, which always
	// change together.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		TrackingRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// NotificationUoW manages transactions for read-state changes and notification inserts.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans orders, shipments and tracking. Used by status transitions.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipments := uow.ShipmentRepository()
	//   log := uow.TrackingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
		TrackingRepoFactory
	}

	// UoWFactory creates new unit of work instances for status transitions.
	UoWFactory interface {
		Create() UoW
	}

	// NumberIssuer hands out unique document numbers per family.
	// Implementations must never return the same number twice for one family.
	NumberIssuer interface {
		Next(ctx context.Context, family sequence.Family) (string, error)
	}
)
