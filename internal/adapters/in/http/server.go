// Package http exposes the logistics use cases over a JSON API served by echo.
//
// Callers are authenticated by an upstream gateway which forwards the caller
// identity in the X-User-ID and X-Organization-ID headers.
package http

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
)

type (
	// CreateOrderHandler handles order creation.
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	// CreateShipmentHandler handles shipment creation.
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error)
	}

	// TransitionStatusHandler moves orders and shipments through their status graphs.
	TransitionStatusHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionStatusCommand) (commands.TransitionResult, error)
	}

	// RecordCheckpointHandler appends a location update that does not change status.
	RecordCheckpointHandler interface {
		Handle(ctx context.Context, cmd commands.RecordCheckpointCommand) (*tracking.Checkpoint, error)
	}

	// IssueDocumentNumberHandler hands out the next number of a document family.
	IssueDocumentNumberHandler interface {
		Handle(ctx context.Context, cmd commands.IssueDocumentNumberCommand) (string, error)
	}

	MarkNotificationHandler interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationCommand) (*notification.Notification, error)
	}

	MarkAllNotificationsReadHandler interface {
		Handle(ctx context.Context, cmd commands.MarkAllNotificationsReadCommand) (int64, error)
	}

	TrackingHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetTrackingHistoryQuery) ([]*tracking.Checkpoint, error)
	}

	LatestCheckpointHandler interface {
		Handle(ctx context.Context, query queries.GetLatestCheckpointQuery) (*tracking.Checkpoint, error)
	}

	// ListNotificationsHandler returns the visible notifications of the caller.
	ListNotificationsHandler interface {
		Handle(ctx context.Context, query queries.ListNotificationsQuery) (queries.ListNotificationsQueryResponse, error)
	}

	// AuthorizeChannelHandler decides whether the caller may subscribe to a channel.
	AuthorizeChannelHandler interface {
		Handle(ctx context.Context, query queries.AuthorizeChannelQuery) (bool, error)
	}

	// StreamSource is the subscribing half of a broadcast transport.
	StreamSource interface {
		Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	}
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	CreateOrder              CreateOrderHandler
	CreateShipment           CreateShipmentHandler
	TransitionStatus         TransitionStatusHandler
	RecordCheckpoint         RecordCheckpointHandler
	IssueDocumentNumber      IssueDocumentNumberHandler
	MarkNotification         MarkNotificationHandler
	MarkAllNotificationsRead MarkAllNotificationsReadHandler
	TrackingHistory          TrackingHistoryHandler
	LatestCheckpoint         LatestCheckpointHandler
	ListNotifications        ListNotificationsHandler
	AuthorizeChannel         AuthorizeChannelHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	streams  StreamSource
	logger   *slog.Logger
}

// NewServer creates a server over handlers. streams backs the server-sent event
// endpoint.
func NewServer(handlers Handlers, streams StreamSource, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		streams:  streams,
		logger:   logger.With("component", "http"),
	}
}
