package trackingrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository. It has no update
// or delete path, and the table rejects updates with a trigger.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Append inserts the checkpoint and reads back the sequence and timestamp
// assigned by the database.
func (r *GormTrackingRepository) Append(
	ctx context.Context,
	checkpoint *tracking.Checkpoint,
) (*tracking.Checkpoint, error) {
	if err := checkpoint.Validate(); err != nil {
		return nil, err
	}
	if checkpoint.IsAppended() {
		return nil, errs.NewValueIsInvalidErrorWithCause("checkpoint", errors.New("already appended"))
	}

	dto := fromDomain(checkpoint)
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO tracking_checkpoints (id, shipment_id, location, status, detail, latitude, longitude)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING seq, recorded_at`,
			dto.ID, dto.ShipmentID, dto.Location, dto.Status, dto.Detail, dto.Latitude, dto.Longitude).
		Row().
		Scan(&dto.Seq, &dto.RecordedAt)
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Latest returns the checkpoint with the highest sequence.
func (r *GormTrackingRepository) Latest(ctx context.Context, shipmentID kernel.ID) (*tracking.Checkpoint, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto CheckpointDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", int64(shipmentID)).
		Order("recorded_at DESC, seq DESC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkpoint for shipment", shipmentID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// History returns every checkpoint of a shipment in sequence order.
func (r *GormTrackingRepository) History(ctx context.Context, shipmentID kernel.ID) ([]*tracking.Checkpoint, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CheckpointDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", int64(shipmentID)).
		Order("recorded_at DESC, seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]*tracking.Checkpoint, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		history = append(history, c)
	}

	return history, nil
}
