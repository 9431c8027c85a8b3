package http_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCreateShipmentHandler struct{ mock.Mock }

func (m *MockCreateShipmentHandler) Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockTransitionStatusHandler struct{ mock.Mock }

func (m *MockTransitionStatusHandler) Handle(
	ctx context.Context,
	cmd commands.TransitionStatusCommand,
) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(commands.TransitionResult)
	return result, args.Error(1)
}

type MockRecordCheckpointHandler struct{ mock.Mock }

func (m *MockRecordCheckpointHandler) Handle(
	ctx context.Context,
	cmd commands.RecordCheckpointCommand,
) (*tracking.Checkpoint, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*tracking.Checkpoint)
	return c, args.Error(1)
}

type MockIssueDocumentNumberHandler struct{ mock.Mock }

func (m *MockIssueDocumentNumberHandler) Handle(ctx context.Context, cmd commands.IssueDocumentNumberCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockMarkNotificationHandler struct{ mock.Mock }

func (m *MockMarkNotificationHandler) Handle(
	ctx context.Context,
	cmd commands.MarkNotificationCommand,
) (*notification.Notification, error) {
	args := m.Called(ctx, cmd)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

type MockMarkAllNotificationsReadHandler struct{ mock.Mock }

func (m *MockMarkAllNotificationsReadHandler) Handle(
	ctx context.Context,
	cmd commands.MarkAllNotificationsReadCommand,
) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrackingHistoryHandler struct{ mock.Mock }

func (m *MockTrackingHistoryHandler) Handle(
	ctx context.Context,
	query queries.GetTrackingHistoryQuery,
) ([]*tracking.Checkpoint, error) {
	args := m.Called(ctx, query)
	history, _ := args.Get(0).([]*tracking.Checkpoint)
	return history, args.Error(1)
}

type MockLatestCheckpointHandler struct{ mock.Mock }

func (m *MockLatestCheckpointHandler) Handle(
	ctx context.Context,
	query queries.GetLatestCheckpointQuery,
) (*tracking.Checkpoint, error) {
	args := m.Called(ctx, query)
	c, _ := args.Get(0).(*tracking.Checkpoint)
	return c, args.Error(1)
}

type MockListNotificationsHandler struct{ mock.Mock }

func (m *MockListNotificationsHandler) Handle(
	ctx context.Context,
	query queries.ListNotificationsQuery,
) (queries.ListNotificationsQueryResponse, error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(queries.ListNotificationsQueryResponse)
	return page, args.Error(1)
}

type MockAuthorizeChannelHandler struct{ mock.Mock }

func (m *MockAuthorizeChannelHandler) Handle(ctx context.Context, query queries.AuthorizeChannelQuery) (bool, error) {
	args := m.Called(ctx, query)
	return args.Bool(0), args.Error(1)
}
