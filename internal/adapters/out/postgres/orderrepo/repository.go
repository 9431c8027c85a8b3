package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and assigns the generated identity to it.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update writes the mutable columns of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "quote_id", "customer_name", "order_date", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(trackingKey(aggregate.ID()), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the row with SELECT ... FOR UPDATE. It only serializes
// writers when called inside a transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func trackingKey(id kernel.ID) string {
	return "order:" + id.String()
}
