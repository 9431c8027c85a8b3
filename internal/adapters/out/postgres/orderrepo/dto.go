// Package orderrepo maps the order aggregate to the orders table.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table. Status is stored by name.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OrganizationID int64 `gorm:"index"`
	OrderNumber    string
	Status         string
	QuoteID        *int64
	CustomerName   string
	OrderDate      time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var quoteID *int64
	if id := o.QuoteID(); id != nil {
		raw := int64(*id)
		quoteID = &raw
	}

	return OrderDTO{
		ID:             int64(o.ID()),
		OrganizationID: int64(o.OrganizationID()),
		OrderNumber:    o.Number(),
		Status:         o.Status().String(),
		QuoteID:        quoteID,
		CustomerName:   o.CustomerName(),
		OrderDate:      o.OrderDate(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var quoteID *kernel.ID
	if dto.QuoteID != nil {
		quoteID = kernel.ID(*dto.QuoteID).Ptr()
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrganizationID),
		dto.OrderNumber,
		status,
		quoteID,
		dto.CustomerName,
		dto.OrderDate,
	)
}
