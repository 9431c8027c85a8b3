// Package shipmentrepo maps the shipment aggregate to the shipments table.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentDTO maps the shipments table.
type ShipmentDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	OrganizationID  int64 `gorm:"index"`
	TrackingNumber  string
	Status          string
	OrderID         *int64
	DriverID        *int64
	ReceiverName    string
	Origin          string
	Destination     string
	CurrentLocation string
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:              int64(s.ID()),
		OrganizationID:  int64(s.OrganizationID()),
		TrackingNumber:  s.TrackingNumber(),
		Status:          s.Status().String(),
		OrderID:         optionalID(s.OrderID()),
		DriverID:        optionalID(s.DriverID()),
		ReceiverName:    s.ReceiverName(),
		Origin:          s.Origin(),
		Destination:     s.Destination(),
		CurrentLocation: s.CurrentLocation(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrganizationID),
		dto.TrackingNumber,
		status,
		dto.ReceiverName,
		shipment.Route{Origin: dto.Origin, Destination: dto.Destination},
		dto.CurrentLocation,
		domainID(dto.OrderID),
		domainID(dto.DriverID),
	)
}

func optionalID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	raw := int64(*id)
	return &raw
}

func domainID(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	return kernel.ID(*raw).Ptr()
}
