package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/sequence"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, c *tracking.Checkpoint) (*tracking.Checkpoint, error) {
	args := m.Called(ctx, c)
	switch v := args.Get(0).(type) {
	case func(*tracking.Checkpoint) *tracking.Checkpoint:
		return v(c), args.Error(1)
	case *tracking.Checkpoint:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTrackingRepository) Latest(ctx context.Context, shipmentID kernel.ID) (*tracking.Checkpoint, error) {
	args := m.Called(ctx, shipmentID)
	c, _ := args.Get(0).(*tracking.Checkpoint)
	return c, args.Error(1)
}

func (m *MockTrackingRepository) History(ctx context.Context, shipmentID kernel.ID) ([]*tracking.Checkpoint, error) {
	args := m.Called(ctx, shipmentID)
	c, _ := args.Get(0).([]*tracking.Checkpoint)
	return c, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) UpdateReadState(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, p kernel.Principal, at time.Time) (int64, error) {
	args := m.Called(ctx, p, at)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every composite unit of work used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNumberIssuer struct{ mock.Mock }

func (m *MockNumberIssuer) Next(ctx context.Context, family sequence.Family) (string, error) {
	args := m.Called(ctx, family)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, evt event.StatusChanged) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, evt event.StatusChanged) {
	m.Called(ctx, evt)
}

// assignOrderID emulates the identity the store generates on insert.
func assignOrderID(id kernel.ID) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*order.Order).AssignID(id)
	}
}

func assignShipmentID(id kernel.ID) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*shipment.Shipment).AssignID(id)
	}
}

// echoAppended returns the checkpoint as the store would, with sequence and time set.
func echoAppended(seq int64, at time.Time) func(*tracking.Checkpoint) *tracking.Checkpoint {
	return func(c *tracking.Checkpoint) *tracking.Checkpoint {
		stored, err := tracking.RestoreCheckpoint(
			c.ID(), seq, c.ShipmentID(), c.Location(), c.Status(), c.Detail(), c.Geo(), at,
		)
		if err != nil {
			panic(err)
		}
		return stored
	}
}
