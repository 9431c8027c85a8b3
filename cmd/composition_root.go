package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/broadcast"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/ownershiprepo"
	"logistics/internal/adapters/out/postgres/sequencerepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/application/notifier"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
//
// Example:
//
//	root, err := cmd.NewCompositionRoot(ctx, cfg, gormDB, logger)
//	if err != nil {
//	    return err
//	}
//	defer root.Close()
//
//	server := root.CreateHTTPServer()
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	numbers    *commands.SequenceNumberGenerator
	transport  broadcast.Transport
	hub        *broadcast.MemoryHub
	logger     *slog.Logger
}

// NewCompositionRoot connects the configured broadcast transport. Close
// releases it.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	// Claims run on the pool so they never join a caller's transaction.
	c.numbers = commands.NewSequenceNumberGenerator(
		sequencerepo.NewGormSequenceRepository(gormDB), cfg.SequenceMaxAttempts, logger,
	)

	switch cfg.BroadcastDriver {
	case BroadcastRedis:
		client, err := broadcast.ConnectRedis(ctx, cfg.RedisURL, cfg.RedisRetryAttempts, cfg.RedisRetryInterval)
		if err != nil {
			return nil, fmt.Errorf("failed to connect broadcast redis: %w", err)
		}
		c.transport = broadcast.NewRedisTransport(client)
	case BroadcastAMQP:
		transport, err := broadcast.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("failed to connect broadcast amqp: %w", err)
		}
		c.transport = transport
	default:
		c.hub = broadcast.NewMemoryHub(broadcast.DefaultSubscriberBuffer)
		c.transport = c.hub
	}
	logger.InfoContext(ctx, "Broadcast transport ready", "driver", cfg.BroadcastDriver)

	return c, nil
}

// Close releases the broadcast transport.
func (c *CompositionRoot) Close() error {
	return c.transport.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForTransitions() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateCreateOrderCommandHandler numbers new orders through the shared sequence generator.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	handler := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.numbers)
	return &handler
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() *commands.CreateShipmentCommandHandler {
	handler := commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
	return &handler
}

// CreateTransitionStatusCommandHandler wires the notification policy and the
// broadcast publisher as post-commit side effects.
func (c *CompositionRoot) CreateTransitionStatusCommandHandler() *commands.TransitionStatusCommandHandler {
	handler := commands.NewTransitionStatusCommandHandler(
		c.uowFactoryForTransitions(),
		notifier.New(services.NewNotificationPolicy(), c.notificationUoWFactory(), c.logger),
		broadcast.NewPublisher(c.transport, c.logger),
		c.logger,
	)
	return &handler
}

func (c *CompositionRoot) CreateRecordCheckpointCommandHandler() *commands.RecordCheckpointCommandHandler {
	handler := commands.NewRecordCheckpointCommandHandler(c.shipmentUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateIssueDocumentNumberCommandHandler() *commands.IssueDocumentNumberCommandHandler {
	handler := commands.NewIssueDocumentNumberCommandHandler(c.numbers)
	return &handler
}

func (c *CompositionRoot) CreateMarkNotificationCommandHandler() *commands.MarkNotificationCommandHandler {
	handler := commands.NewMarkNotificationCommandHandler(c.notificationUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() *commands.MarkAllNotificationsReadCommandHandler {
	handler := commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(trackingrepo.NewGormTrackingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetLatestCheckpointQueryHandler() queries.GetLatestCheckpointQueryHandler {
	return queries.NewGetLatestCheckpointQueryHandler(trackingrepo.NewGormTrackingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthorizeChannelQueryHandler() queries.AuthorizeChannelQueryHandler {
	return queries.NewAuthorizeChannelQueryHandler(ownershiprepo.NewGormOwnershipReader(c.gormDB), c.logger)
}

// CreateHTTPServer creates the API server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		CreateShipment:           c.CreateCreateShipmentCommandHandler(),
		TransitionStatus:         c.CreateTransitionStatusCommandHandler(),
		RecordCheckpoint:         c.CreateRecordCheckpointCommandHandler(),
		IssueDocumentNumber:      c.CreateIssueDocumentNumberCommandHandler(),
		MarkNotification:         c.CreateMarkNotificationCommandHandler(),
		MarkAllNotificationsRead: c.CreateMarkAllNotificationsReadCommandHandler(),
		TrackingHistory:          c.CreateGetTrackingHistoryQueryHandler(),
		LatestCheckpoint:         c.CreateGetLatestCheckpointQueryHandler(),
		ListNotifications:        c.CreateListNotificationsQueryHandler(),
		AuthorizeChannel:         c.CreateAuthorizeChannelQueryHandler(),
	}, c.transport, c.logger)
}

// CreateJobManager only schedules channel cleanup for the in-memory hub;
// Redis and RabbitMQ keep no per-channel state in the process.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.hub == nil {
		return jobs.NewJobManager()
	}
	return jobs.NewJobManager(
		jobs.NewChannelCleanupJob(c.hub, c.cfg.ChannelCleanupSchedule, c.cfg.ChannelIdleTimeout, c.logger),
	)
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncShipmentUoWFactory adapts a function to commands.ShipmentUoWFactory.
type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

// FuncNotificationUoWFactory adapts a function to commands.NotificationUoWFactory.
type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
