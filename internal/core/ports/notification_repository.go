package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
)

// NotificationRepository is the write side of notification records.
// Listings are served by queries.ListNotificationsQueryHandler.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// UpdateReadState persists the read flag and read time of n.
	UpdateReadState(ctx context.Context, n *notification.Notification) error

	// MarkAllRead marks every unread record visible to principal and returns how many changed.
	MarkAllRead(ctx context.Context, principal kernel.Principal, at time.Time) (int64, error)
}
