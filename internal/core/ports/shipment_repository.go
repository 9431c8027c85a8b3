package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates.
type ShipmentRepository interface {
	// Add inserts the shipment and assigns its store-generated identity.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// GetForUpdate loads the shipment and holds its row lock until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)
}
