package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(trackingKey(aggregate.ID()), aggregate)
	return nil
}

// Update writes status, location and assignment. The tracking number never changes.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "order_id", "driver_id", "receiver_name", "current_location", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID())
	}

	r.tracker.TrackAggregate(trackingKey(aggregate.ID()), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a shipment and locks its row until the transaction ends.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShipmentRepository) get(db *gorm.DB, id kernel.ID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := db.First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func trackingKey(id kernel.ID) string {
	return "shipment:" + id.String()
}
