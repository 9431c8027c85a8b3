package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
)

// NewOrder is the body of POST /orders.
type NewOrder struct {
	CustomerName string     `json:"customer_name"`
	QuoteID      *int64     `json:"quote_id"`
	OrderDate    *time.Time `json:"order_date"`
}

// NewShipment is the body of POST /shipments.
type NewShipment struct {
	OrderID      *int64 `json:"order_id"`
	DriverID     *int64 `json:"driver_id"`
	ReceiverName string `json:"receiver_name"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
}

// StatusChange is the body of both status endpoints.
type StatusChange struct {
	Status string `json:"status"`
}

// NewCheckpoint is the body of POST /shipments/:id/checkpoints. Latitude and
// longitude are both given or both omitted.
type NewCheckpoint struct {
	Location  string   `json:"location"`
	Detail    string   `json:"detail"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ChannelAuth accepts both JSON and form bodies.
type ChannelAuth struct {
	ChannelName string `json:"channel_name" form:"channel_name"`
}

// Order is the order representation returned by the API.
type Order struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Number         string    `json:"order_number"`
	Status         string    `json:"status"`
	QuoteID        *int64    `json:"quote_id"`
	CustomerName   string    `json:"customer_name"`
	OrderDate      time.Time `json:"order_date"`
}

// Shipment is the shipment representation returned by the API.
type Shipment struct {
	ID              int64  `json:"id"`
	OrganizationID  int64  `json:"organization_id"`
	TrackingNumber  string `json:"tracking_number"`
	Status          string `json:"status"`
	ReceiverName    string `json:"receiver_name"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	CurrentLocation string `json:"current_location"`
	OrderID         *int64 `json:"order_id"`
	DriverID        *int64 `json:"driver_id"`
}

type Checkpoint struct {
	ID         string    `json:"id"`
	Sequence   int64     `json:"sequence"`
	ShipmentID int64     `json:"shipment_id"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	Detail     string    `json:"detail"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Transition reports a successful status change. Checkpoint is set only for
// shipments.
type Transition struct {
	Entity     string      `json:"entity"`
	ID         int64       `json:"id"`
	OldStatus  string      `json:"old_status"`
	NewStatus  string      `json:"new_status"`
	Checkpoint *Checkpoint `json:"checkpoint,omitempty"`
}

type DocumentNumber struct {
	Family string `json:"family"`
	Number string `json:"number"`
}

type Notification struct {
	ID        string     `json:"id"`
	UserID    *int64     `json:"user_id"`
	Category  string     `json:"category"`
	Type      string     `json:"type"`
	Priority  string     `json:"priority"`
	Icon      string     `json:"icon"`
	Message   string     `json:"message"`
	Link      string     `json:"link"`
	RelatedID int64      `json:"related_id"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationPage is one page of notifications plus the unread total of the whole scope.
type NotificationPage struct {
	Items       []Notification `json:"items"`
	UnreadCount int64          `json:"unread_count"`
}

type MarkedCount struct {
	Updated int64 `json:"updated"`
}

func optionalID(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	return kernel.ID(*raw).Ptr()
}

func rawID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	raw := int64(*id)
	return &raw
}

func toOrder(o *order.Order) Order {
	return Order{
		ID:             int64(o.ID()),
		OrganizationID: int64(o.OrganizationID()),
		Number:         o.Number(),
		Status:         o.Status().String(),
		QuoteID:        rawID(o.QuoteID()),
		CustomerName:   o.CustomerName(),
		OrderDate:      o.OrderDate(),
	}
}

func toShipment(s *shipment.Shipment) Shipment {
	return Shipment{
		ID:              int64(s.ID()),
		OrganizationID:  int64(s.OrganizationID()),
		TrackingNumber:  s.TrackingNumber(),
		Status:          s.Status().String(),
		ReceiverName:    s.ReceiverName(),
		Origin:          s.Origin(),
		Destination:     s.Destination(),
		CurrentLocation: s.CurrentLocation(),
		OrderID:         rawID(s.OrderID()),
		DriverID:        rawID(s.DriverID()),
	}
}

func toCheckpoint(c *tracking.Checkpoint) Checkpoint {
	out := Checkpoint{
		ID:         c.ID().String(),
		Sequence:   c.Sequence(),
		ShipmentID: int64(c.ShipmentID()),
		Location:   c.Location(),
		Status:     c.Status().String(),
		Detail:     c.Detail(),
		RecordedAt: c.RecordedAt(),
	}
	if geo := c.Geo(); geo != nil {
		lat, lng := geo.Latitude(), geo.Longitude()
		out.Latitude, out.Longitude = &lat, &lng
	}
	return out
}

func toCheckpoints(history []*tracking.Checkpoint) []Checkpoint {
	out := make([]Checkpoint, len(history))
	for i, c := range history {
		out[i] = toCheckpoint(c)
	}
	return out
}

func toNotificationView(v queries.NotificationView) Notification {
	return Notification{
		ID:        v.ID.String(),
		UserID:    rawID(v.UserID),
		Category:  v.Category,
		Type:      v.Type,
		Priority:  v.Priority,
		Icon:      v.Icon,
		Message:   v.Message,
		Link:      v.Link,
		RelatedID: int64(v.RelatedID),
		IsRead:    v.IsRead,
		ReadAt:    v.ReadAt,
		CreatedAt: v.CreatedAt,
	}
}

func toNotification(n *notification.Notification) Notification {
	return Notification{
		ID:        n.ID().String(),
		UserID:    rawID(n.UserID()),
		Category:  n.Category().String(),
		Type:      n.Type().String(),
		Priority:  n.Priority().String(),
		Icon:      n.Icon(),
		Message:   n.Message(),
		Link:      n.Link(),
		RelatedID: int64(n.RelatedID()),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}
