package services

import (
	"fmt"

	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

// notificationRule is one row of the policy table. template receives the
// entity's display reference followed by its counterpart name.
type notificationRule struct {
	typ      notification.Type
	priority notification.Priority
	icon     string
	template string
}

var orderRules = map[order.Status]notificationRule{
	order.Processing: {notification.TypeInfo, notification.PriorityMedium, "⚙️", "Order %s for %s is now being processed"},
	order.Fulfilled:  {notification.TypeSuccess, notification.PriorityMedium, "✅", "Order %s for %s has been fulfilled"},
	order.Cancelled:  {notification.TypeWarning, notification.PriorityHigh, "❌", "Order %s for %s has been cancelled"},
}

var shipmentRules = map[shipment.Status]notificationRule{
	shipment.OutForDelivery: {notification.TypeInfo, notification.PriorityMedium, "🚚", "Shipment %s for %s is out for delivery"},
	shipment.Delivered:      {notification.TypeSuccess, notification.PriorityLow, "📦", "Shipment %s has been delivered to %s"},
	shipment.Cancelled:      {notification.TypeWarning, notification.PriorityHigh, "❌", "Shipment %s for %s has been cancelled"},
}

// NotificationPolicy decides, per committed status change, whether a
// notification record is created and what it says.
//
// Records are organization-wide. Statuses outside the table, and events whose
// entity has no organization, produce nothing.
//
// Example:
//
//	n, ok := services.NewNotificationPolicy().Decide(evt)
//	if ok {
//	    err = repo.Add(ctx, n)
//	}
type NotificationPolicy struct{}

// NewNotificationPolicy creates the policy. It holds no state.
func NewNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{}
}

// Decide returns the record to persist, or false when the change is not notifiable.
func (p NotificationPolicy) Decide(evt event.StatusChanged) (*notification.Notification, bool) {
	if evt.OrganizationID().IsZero() {
		return nil, false
	}

	var (
		rule     notificationRule
		ok       bool
		category notification.Category
		link     string
		message  string
	)

	switch evt.Kind() {
	case kernel.EntityOrder:
		o := evt.Order()
		if rule, ok = orderRules[o.Status()]; !ok {
			return nil, false
		}
		category = notification.CategoryOrder
		link = fmt.Sprintf("/orders/%d", o.ID())
		message = fmt.Sprintf(rule.template, o.Number(), o.CustomerName())
	case kernel.EntityShipment:
		s := evt.Shipment()
		if rule, ok = shipmentRules[s.Status()]; !ok {
			return nil, false
		}
		category = notification.CategoryShipment
		link = fmt.Sprintf("/shipments/%d", s.ID())
		message = fmt.Sprintf(rule.template, s.TrackingNumber(), s.ReceiverName())
	default:
		return nil, false
	}

	n, err := notification.NewNotification(evt.OrganizationID(), nil, notification.Content{
		Category:  category,
		Type:      rule.typ,
		Priority:  rule.priority,
		Icon:      rule.icon,
		Message:   message,
		Link:      link,
		RelatedID: evt.EntityID(),
	}, evt.OccurredAt())
	if err != nil {
		return nil, false
	}

	return n, true
}
