package ports

import (
	"context"

	"logistics/internal/core/domain/model/event"
)

// Notifier turns a committed status change into zero or one notification record.
type Notifier interface {
	Notify(ctx context.Context, evt event.StatusChanged) error
}

// EventPublisher fans a committed status change out to real-time subscribers.
// Delivery is best effort and failures never reach the caller.
type EventPublisher interface {
	Publish(ctx context.Context, evt event.StatusChanged)
}
