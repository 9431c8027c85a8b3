package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// OwnershipReader resolves the organization that owns an entity. Missing
// entities yield errs.ErrObjectNotFound.
type OwnershipReader interface {
	OrderOrganization(ctx context.Context, orderID kernel.ID) (kernel.ID, error)

	ShipmentOrganization(ctx context.Context, shipmentID kernel.ID) (kernel.ID, error)

	WarehouseOrganization(ctx context.Context, warehouseID kernel.ID) (kernel.ID, error)
}
