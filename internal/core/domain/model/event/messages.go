package event

import (
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

const (
	orderFallbackMessage    = "Order status updated"
	shipmentFallbackMessage = "Shipment status updated"
)

var orderMessages = map[order.Status]string{
	order.Pending:    "Order is pending confirmation",
	order.Processing: "Order is being processed",
	order.Fulfilled:  "Order has been fulfilled",
	order.Shipped:    "Order has been shipped",
	order.Cancelled:  "Order has been cancelled",
}

var shipmentMessages = map[shipment.Status]string{
	shipment.Pending:        "Shipment is pending pickup",
	shipment.Processing:     "Shipment is being prepared",
	shipment.InTransit:      "Shipment is in transit",
	shipment.OutForDelivery: "Shipment is out for delivery",
	shipment.Delivered:      "Shipment has been delivered",
	shipment.Failed:         "Delivery attempt failed",
	shipment.Returned:       "Shipment has been returned to sender",
	shipment.Cancelled:      "Shipment has been cancelled",
}

func OrderStatusMessage(s order.Status) string {
	if msg, ok := orderMessages[s]; ok {
		return msg
	}
	return orderFallbackMessage
}

func ShipmentStatusMessage(s shipment.Status) string {
	if msg, ok := shipmentMessages[s]; ok {
		return msg
	}
	return shipmentFallbackMessage
}
