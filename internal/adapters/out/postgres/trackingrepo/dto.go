// Package trackingrepo stores the append-only tracking log.
package trackingrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// CheckpointDTO is one row of tracking_checkpoints. Seq and RecordedAt are
// filled by the database on insert.
type CheckpointDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement;->"`
	ID         uuid.UUID `gorm:"type:uuid"`
	ShipmentID int64
	Location   string
	Status     string
	Detail     string
	Latitude   *float64
	Longitude  *float64
	RecordedAt time.Time `gorm:"->"`
}

func (CheckpointDTO) TableName() string {
	return "tracking_checkpoints"
}

func fromDomain(c *tracking.Checkpoint) CheckpointDTO {
	dto := CheckpointDTO{
		ID:         c.ID().Bytes(),
		ShipmentID: int64(c.ShipmentID()),
		Location:   c.Location(),
		Status:     c.Status().String(),
		Detail:     c.Detail(),
	}
	if geo := c.Geo(); geo != nil {
		lat, lng := geo.Latitude(), geo.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}
	return dto
}

func toDomain(dto CheckpointDTO) (*tracking.Checkpoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var geo *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &point
	}

	return tracking.RestoreCheckpoint(
		id,
		dto.Seq,
		kernel.ID(dto.ShipmentID),
		dto.Location,
		status,
		dto.Detail,
		geo,
		dto.RecordedAt,
	)
}
