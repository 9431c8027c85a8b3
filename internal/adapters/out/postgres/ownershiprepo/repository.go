// Package ownershiprepo resolves which organization owns an order, a shipment
// or a warehouse. Used by the channel authorizer.
package ownershiprepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOwnershipReader implements queries.OwnershipReader.
type GormOwnershipReader struct {
	db *gorm.DB
}

// NewGormOwnershipReader creates a reader over db.
func NewGormOwnershipReader(db *gorm.DB) *GormOwnershipReader {
	return &GormOwnershipReader{db: db}
}

func (r *GormOwnershipReader) OrderOrganization(ctx context.Context, orderID kernel.ID) (kernel.ID, error) {
	return r.organizationOf(ctx, "orders", "order", orderID)
}

func (r *GormOwnershipReader) ShipmentOrganization(ctx context.Context, shipmentID kernel.ID) (kernel.ID, error) {
	return r.organizationOf(ctx, "shipments", "shipment", shipmentID)
}

func (r *GormOwnershipReader) WarehouseOrganization(ctx context.Context, warehouseID kernel.ID) (kernel.ID, error) {
	return r.organizationOf(ctx, "warehouses", "warehouse", warehouseID)
}

// organizationOf reads organization_id from table. table is never user input.
func (r *GormOwnershipReader) organizationOf(ctx context.Context, table, name string, id kernel.ID) (kernel.ID, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var organizationID int64
	result := r.db.WithContext(ctx).
		Table(table).
		Select("organization_id").
		Where("id = ?", int64(id)).
		Limit(1).
		Scan(&organizationID)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError(name, id)
	}

	return kernel.ID(organizationID), nil
}
