// Package event holds the domain events published after a status change
// has been committed.
package event

import (
	"time"

	"logistics/internal/core/domain/model/channel"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

const (
	OrderStatusUpdated    = "order.status.updated"
	ShipmentStatusUpdated = "shipment.status.updated"
)

// StatusChanged describes one committed transition of an order or a shipment.
// Exactly one of Order and Shipment is set, matching Kind.
type StatusChanged struct {
	kind       kernel.EntityKind
	order      *order.Order
	shipment   *shipment.Shipment
	oldStatus  string
	actor      kernel.ID
	occurredAt time.Time
}

// NewOrderStatusChanged captures o after its transition away from old.
func NewOrderStatusChanged(o *order.Order, old order.Status, actor kernel.ID, at time.Time) StatusChanged {
	return StatusChanged{
		kind:       kernel.EntityOrder,
		order:      o,
		oldStatus:  old.String(),
		actor:      actor,
		occurredAt: at,
	}
}

// NewShipmentStatusChanged captures s after its transition away from old.
func NewShipmentStatusChanged(s *shipment.Shipment, old shipment.Status, actor kernel.ID, at time.Time) StatusChanged {
	return StatusChanged{
		kind:       kernel.EntityShipment,
		shipment:   s,
		oldStatus:  old.String(),
		actor:      actor,
		occurredAt: at,
	}
}

func (e StatusChanged) Kind() kernel.EntityKind      { return e.kind }
func (e StatusChanged) Order() *order.Order          { return e.order }
func (e StatusChanged) Shipment() *shipment.Shipment { return e.shipment }
func (e StatusChanged) OldStatus() string            { return e.oldStatus }
func (e StatusChanged) Actor() kernel.ID             { return e.actor }
func (e StatusChanged) OccurredAt() time.Time        { return e.occurredAt }

func (e StatusChanged) NewStatus() string {
	switch e.kind {
	case kernel.EntityOrder:
		return e.order.Status().String()
	case kernel.EntityShipment:
		return e.shipment.Status().String()
	default:
		return ""
	}
}

func (e StatusChanged) EntityID() kernel.ID {
	switch e.kind {
	case kernel.EntityOrder:
		return e.order.ID()
	case kernel.EntityShipment:
		return e.shipment.ID()
	default:
		return 0
	}
}

// OrganizationID is zero when the event carries no entity.
func (e StatusChanged) OrganizationID() kernel.ID {
	switch e.kind {
	case kernel.EntityOrder:
		return e.order.OrganizationID()
	case kernel.EntityShipment:
		return e.shipment.OrganizationID()
	default:
		return 0
	}
}

// Name is the event name subscribers bind to.
func (e StatusChanged) Name() string {
	if e.kind == kernel.EntityShipment {
		return ShipmentStatusUpdated
	}
	return OrderStatusUpdated
}

// Channels is the fan-out set: the organization channel, the entity channel and,
// for shipments carrying a driver, that driver's channel.
func (e StatusChanged) Channels() []channel.Channel {
	switch e.kind {
	case kernel.EntityOrder:
		return []channel.Channel{
			channel.ForOrganization(e.order.OrganizationID()),
			channel.ForOrder(e.order.ID()),
		}
	case kernel.EntityShipment:
		channels := []channel.Channel{
			channel.ForOrganization(e.shipment.OrganizationID()),
			channel.ForShipment(e.shipment.ID()),
		}
		if driverID := e.shipment.DriverID(); driverID != nil {
			channels = append(channels, channel.ForDriver(*driverID))
		}
		return channels
	default:
		return nil
	}
}

// Message is the human-readable sentence for the new status.
func (e StatusChanged) Message() string {
	switch e.kind {
	case kernel.EntityOrder:
		return OrderStatusMessage(e.order.Status())
	case kernel.EntityShipment:
		return ShipmentStatusMessage(e.shipment.Status())
	default:
		return ""
	}
}

// Payload is the flat map delivered to subscribers. Field names are stable.
func (e StatusChanged) Payload() map[string]any {
	switch e.kind {
	case kernel.EntityOrder:
		return map[string]any{
			"order_id":      int64(e.order.ID()),
			"order_number":  e.order.Number(),
			"customer_name": e.order.CustomerName(),
			"old_status":    e.oldStatus,
			"new_status":    e.NewStatus(),
			"updated_by":    int64(e.actor),
			"timestamp":     e.occurredAt.UTC().Format(time.RFC3339),
			"message":       e.Message(),
		}
	case kernel.EntityShipment:
		payload := map[string]any{
			"shipment_id":     int64(e.shipment.ID()),
			"tracking_number": e.shipment.TrackingNumber(),
			"receiver_name":   e.shipment.ReceiverName(),
			"old_status":      e.oldStatus,
			"new_status":      e.NewStatus(),
			"updated_by":      int64(e.actor),
			"timestamp":       e.occurredAt.UTC().Format(time.RFC3339),
			"message":         e.Message(),
		}
		if driverID := e.shipment.DriverID(); driverID != nil {
			payload["driver_id"] = int64(*driverID)
		}
		return payload
	default:
		return map[string]any{}
	}
}
