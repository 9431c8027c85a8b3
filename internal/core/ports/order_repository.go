package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add inserts the order and assigns its store-generated identity.
	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate loads the order and holds its row lock until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)
}
