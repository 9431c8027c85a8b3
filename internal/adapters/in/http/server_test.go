package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/broadcast"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/sequence"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	orderDate  = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	recordedAt = time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)
)

type fixture struct {
	echo *echo.Echo
	hub  *broadcast.MemoryHub

	createOrder      *MockCreateOrderHandler
	createShipment   *MockCreateShipmentHandler
	transition       *MockTransitionStatusHandler
	recordCheckpoint *MockRecordCheckpointHandler
	issueNumber      *MockIssueDocumentNumberHandler
	markNotification *MockMarkNotificationHandler
	markAll          *MockMarkAllNotificationsReadHandler
	history          *MockTrackingHistoryHandler
	latest           *MockLatestCheckpointHandler
	list             *MockListNotificationsHandler
	authorize        *MockAuthorizeChannelHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		echo:             echo.New(),
		hub:              broadcast.NewMemoryHub(4),
		createOrder:      new(MockCreateOrderHandler),
		createShipment:   new(MockCreateShipmentHandler),
		transition:       new(MockTransitionStatusHandler),
		recordCheckpoint: new(MockRecordCheckpointHandler),
		issueNumber:      new(MockIssueDocumentNumberHandler),
		markNotification: new(MockMarkNotificationHandler),
		markAll:          new(MockMarkAllNotificationsReadHandler),
		history:          new(MockTrackingHistoryHandler),
		latest:           new(MockLatestCheckpointHandler),
		list:             new(MockListNotificationsHandler),
		authorize:        new(MockAuthorizeChannelHandler),
	}
	t.Cleanup(func() { _ = f.hub.Close() })

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:              f.createOrder,
		CreateShipment:           f.createShipment,
		TransitionStatus:         f.transition,
		RecordCheckpoint:         f.recordCheckpoint,
		IssueDocumentNumber:      f.issueNumber,
		MarkNotification:         f.markNotification,
		MarkAllNotificationsRead: f.markAll,
		TrackingHistory:          f.history,
		LatestCheckpoint:         f.latest,
		ListNotifications:        f.list,
		AuthorizeChannel:         f.authorize,
	}, f.hub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server.Register(f.echo)

	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(httpadapter.HeaderUserID, "11")
	req.Header.Set(httpadapter.HeaderOrganizationID, "3")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func shipmentAt(t *testing.T, status shipment.Status, driverID *kernel.ID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(7, 3, "TRK-0000000000AB", status, "Jane Roe",
		shipment.Route{Origin: "Berlin Hub", Destination: "Hamburg Depot"}, "Hanover Sort Center", nil, driverID)
	require.NoError(t, err)
	return s
}

func checkpointAt(t *testing.T, seq int64, status shipment.Status, geo *kernel.GeoPoint) *tracking.Checkpoint {
	t.Helper()
	c, err := tracking.RestoreCheckpoint(kernel.NewUUID(), seq, 7, "Hanover Sort Center", status, "Scanned", geo, recordedAt)
	require.NoError(t, err)
	return c
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_CreateOrder(t *testing.T) {
	f := newFixture(t)
	created, err := order.RestoreOrder(1, 3, "ORD-00001", order.Pending, nil, "Acme Retail", orderDate)
	require.NoError(t, err)

	f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.OrganizationID() == 3 && cmd.CustomerName() == "Acme Retail" &&
			cmd.QuoteID() != nil && *cmd.QuoteID() == 9 && cmd.OrderDate().Equal(orderDate)
	})).Return(created, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders",
		`{"customer_name":"Acme Retail","quote_id":9,"order_date":"2026-06-01T00:00:00Z"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[httpadapter.Order](t, rec)
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "ORD-00001", body.Number)
	assert.Equal(t, "pending", body.Status)
	f.createOrder.AssertExpectations(t)
}

func TestServer_CreateOrder_ValidationError(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders", `{"customer_name":"  "}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeBody[httpadapter.Error](t, rec).Message, "customer name")
	f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_CreateOrder_InternalErrorIsHidden(t *testing.T) {
	f := newFixture(t)
	f.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("claim: %w", commands.ErrSequenceContention)).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/orders", `{"customer_name":"Acme Retail"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeBody[httpadapter.Error](t, rec).Message)
}

func TestServer_MalformedIdentityHeader(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/notifications", "", map[string]string{
		httpadapter.HeaderUserID: "eleven",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	f.list.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_TransitionShipmentStatus(t *testing.T) {
	f := newFixture(t)
	driverID := kernel.ID(21)
	checkpoint := checkpointAt(t, 4, shipment.InTransit, nil)

	f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionStatusCommand) bool {
		return cmd.Kind() == kernel.EntityShipment && cmd.EntityID() == 7 &&
			cmd.NewStatus() == "in_transit" && cmd.Actor() == 11
	})).Return(commands.TransitionResult{
		Kind:       kernel.EntityShipment,
		Shipment:   shipmentAt(t, shipment.InTransit, &driverID),
		Checkpoint: checkpoint,
		OldStatus:  "processing",
		NewStatus:  "in_transit",
	}, nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/shipments/7/status", `{"status":"in_transit"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[httpadapter.Transition](t, rec)
	assert.Equal(t, "shipment", body.Entity)
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "processing", body.OldStatus)
	assert.Equal(t, "in_transit", body.NewStatus)
	require.NotNil(t, body.Checkpoint)
	assert.Equal(t, int64(4), body.Checkpoint.Sequence)
	assert.Equal(t, checkpoint.ID().String(), body.Checkpoint.ID)
}

func TestServer_TransitionOrderStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid status", fmt.Errorf("%w: %w", commands.ErrInvalidTransition, errs.NewValueIsInvalidError("status")), http.StatusUnprocessableEntity},
		{"not found", errs.NewObjectNotFoundError("order", kernel.ID(1)), http.StatusNotFound},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.transition.On("Handle", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(t, http.MethodPost, "/api/v1/orders/1/status", `{"status":"teleported"}`, nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestServer_TransitionStatus_InvalidPathID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/abc/status", `{"status":"processing"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_CreateShipment(t *testing.T) {
	f := newFixture(t)
	f.createShipment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateShipmentCommand) bool {
		return cmd.OrganizationID() == 3 && cmd.ReceiverName() == "Jane Roe" &&
			cmd.Route().Origin == "Berlin Hub" && cmd.DriverID() == nil
	})).Return(shipmentAt(t, shipment.Pending, nil), nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/shipments",
		`{"receiver_name":"Jane Roe","origin":"Berlin Hub","destination":"Hamburg Depot"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[httpadapter.Shipment](t, rec)
	assert.Equal(t, "TRK-0000000000AB", body.TrackingNumber)
	assert.Equal(t, "Hanover Sort Center", body.CurrentLocation)
	assert.Nil(t, body.DriverID)
}

func TestServer_RecordCheckpoint(t *testing.T) {
	f := newFixture(t)
	geo, err := kernel.NewGeoPoint(52.37, 9.73)
	require.NoError(t, err)
	f.recordCheckpoint.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RecordCheckpointCommand) bool {
		return cmd.ShipmentID() == 7 && cmd.Location() == "Hanover Sort Center" && cmd.Geo() != nil
	})).Return(checkpointAt(t, 5, shipment.InTransit, &geo), nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/shipments/7/checkpoints",
		`{"location":"Hanover Sort Center","detail":"Scanned","latitude":52.37,"longitude":9.73}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[httpadapter.Checkpoint](t, rec)
	assert.Equal(t, "in_transit", body.Status)
	require.NotNil(t, body.Latitude)
	assert.InDelta(t, 52.37, *body.Latitude, 1e-9)
}

func TestServer_RecordCheckpoint_HalfGeoPoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/shipments/7/checkpoints",
		`{"location":"Hanover Sort Center","latitude":52.37}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	f.recordCheckpoint.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_Tracking(t *testing.T) {
	f := newFixture(t)
	history := []*tracking.Checkpoint{
		checkpointAt(t, 2, shipment.InTransit, nil),
		checkpointAt(t, 1, shipment.Pending, nil),
	}
	f.history.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetTrackingHistoryQuery) bool {
		return q.ShipmentID() == 7
	})).Return(history, nil).Once()
	f.latest.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetLatestCheckpointQuery) bool {
		return q.ShipmentID() == 8
	})).Return(nil, errs.NewObjectNotFoundError("checkpoint for shipment", kernel.ID(8))).Once()

	rec := f.do(t, http.MethodGet, "/api/v1/shipments/7/tracking", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]httpadapter.Checkpoint](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, int64(2), body[0].Sequence)

	rec = f.do(t, http.MethodGet, "/api/v1/shipments/8/tracking/latest", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_IssueDocumentNumber(t *testing.T) {
	f := newFixture(t)
	f.issueNumber.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.IssueDocumentNumberCommand) bool {
		return cmd.Family() == sequence.Invoice
	})).Return("INV-000042", nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/sequences/invoice", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, httpadapter.DocumentNumber{Family: "invoice", Number: "INV-000042"},
		decodeBody[httpadapter.DocumentNumber](t, rec))

	rec = f.do(t, http.MethodPost, "/api/v1/sequences/receipt", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServer_ListNotifications(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListNotificationsQuery) bool {
		return q.Principal() == kernel.NewPrincipal(11, 3) && q.OnlyUnread() && q.Limit() == 5 && q.Offset() == 10
	})).Return(queries.ListNotificationsQueryResponse{
		Items: []queries.NotificationView{{
			ID:        id,
			Category:  "order",
			Type:      "info",
			Priority:  "medium",
			Message:   "Order ORD-00001 is now processing",
			Link:      "/orders/1",
			RelatedID: 1,
			CreatedAt: recordedAt,
		}},
		UnreadCount: 4,
	}, nil).Once()

	rec := f.do(t, http.MethodGet, "/api/v1/notifications?unread=true&limit=5&offset=10", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[httpadapter.NotificationPage](t, rec)
	assert.Equal(t, int64(4), body.UnreadCount)
	require.Len(t, body.Items, 1)
	assert.Equal(t, id.String(), body.Items[0].ID)
	assert.Equal(t, "/orders/1", body.Items[0].Link)
}

func TestServer_ListNotifications_BadParameters(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/v1/notifications?limit=many", "", nil).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, f.do(t, http.MethodGet, "/api/v1/notifications?limit=500", "", nil).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, f.do(t, http.MethodGet, "/api/v1/notifications", "", map[string]string{
		httpadapter.HeaderOrganizationID: "",
	}).Code)
}

func TestServer_MarkNotification(t *testing.T) {
	f := newFixture(t)
	n, err := notification.NewNotification(3, nil, notification.Content{
		Category:  notification.CategoryOrder,
		Type:      notification.TypeInfo,
		Priority:  notification.PriorityMedium,
		Message:   "Order ORD-00001 is now processing",
		Link:      "/orders/1",
		RelatedID: 1,
	}, recordedAt)
	require.NoError(t, err)
	n.MarkRead(recordedAt.Add(time.Minute))

	f.markNotification.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkNotificationCommand) bool {
		return cmd.NotificationID().IsEqual(n.ID()) && cmd.Read()
	})).Return(n, nil).Once()
	f.markNotification.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkNotificationCommand) bool {
		return !cmd.Read()
	})).Return(nil, errs.NewObjectNotFoundError("notification", n.ID())).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/notifications/"+n.ID().String()+"/read", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[httpadapter.Notification](t, rec).IsRead)

	rec = f.do(t, http.MethodPost, "/api/v1/notifications/"+n.ID().String()+"/unread", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/notifications/not-a-uuid/read", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_MarkAllNotificationsRead(t *testing.T) {
	f := newFixture(t)
	f.markAll.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkAllNotificationsReadCommand) bool {
		return cmd.Principal() == kernel.NewPrincipal(11, 3)
	})).Return(int64(6), nil).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/notifications/read-all", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(6), decodeBody[httpadapter.MarkedCount](t, rec).Updated)
}

func TestServer_AuthorizeChannel(t *testing.T) {
	f := newFixture(t)
	f.authorize.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.AuthorizeChannelQuery) bool {
		return q.ChannelName() == "private-organization.3"
	})).Return(true, nil)
	f.authorize.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.AuthorizeChannelQuery) bool {
		return q.ChannelName() == "organization.4"
	})).Return(false, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/broadcasting/auth", `{"channel_name":"private-organization.3"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/broadcasting/auth", `{"channel_name":"organization.4"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_Stream(t *testing.T) {
	f := newFixture(t)
	f.authorize.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.AuthorizeChannelQuery) bool {
		return q.ChannelName() == "private-shipment.7"
	})).Return(true, nil)

	srv := httptest.NewServer(f.echo)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/broadcasting/stream?channel=private-shipment.7", nil)
	require.NoError(t, err)
	req.Header.Set(httpadapter.HeaderUserID, "11")
	req.Header.Set(httpadapter.HeaderOrganizationID, "3")

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get(echo.HeaderContentType))

	require.Eventually(t, func() bool { return f.hub.Subscribers("shipment.7") == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, f.hub.Publish(t.Context(), "shipment.7", []byte(`{"event":"shipment.status.updated"}`)))

	line, err := bufio.NewReader(res.Body).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "data: {\"event\":\"shipment.status.updated\"}\n", line)
}

func TestServer_Stream_Forbidden(t *testing.T) {
	f := newFixture(t)
	f.authorize.On("Handle", mock.Anything, mock.Anything).Return(false, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/broadcasting/stream?channel=shipment.8", "", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, f.hub.Channels())
}
