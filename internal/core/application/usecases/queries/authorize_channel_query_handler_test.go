package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOwnershipReader struct{ mock.Mock }

func (m *MockOwnershipReader) OrderOrganization(ctx context.Context, id kernel.ID) (kernel.ID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOwnershipReader) ShipmentOrganization(ctx context.Context, id kernel.ID) (kernel.ID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOwnershipReader) WarehouseOrganization(ctx context.Context, id kernel.ID) (kernel.ID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func newAuthorizer(owners *MockOwnershipReader) queries.AuthorizeChannelQueryHandler {
	return queries.NewAuthorizeChannelQueryHandler(owners, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func authorize(t *testing.T, owners *MockOwnershipReader, principal kernel.Principal, name string) bool {
	t.Helper()
	allowed, err := newAuthorizer(owners).Handle(t.Context(), queries.NewAuthorizeChannelQuery(principal, name))
	require.NoError(t, err)
	return allowed
}

func TestAuthorizeChannelQueryHandler_Organization(t *testing.T) {
	owners := new(MockOwnershipReader)
	member := kernel.NewPrincipal(11, 3)

	assert.True(t, authorize(t, owners, member, "organization.3"))
	assert.True(t, authorize(t, owners, member, "private-organization.3"))
	assert.False(t, authorize(t, owners, member, "organization.4"))
	assert.False(t, authorize(t, owners, kernel.NewPrincipal(11, 0), "organization.3"))
	owners.AssertNotCalled(t, "OrderOrganization", mock.Anything, mock.Anything)
}

func TestAuthorizeChannelQueryHandler_ResolvedOwnership(t *testing.T) {
	owners := new(MockOwnershipReader)
	owners.On("OrderOrganization", mock.Anything, kernel.ID(1)).Return(kernel.ID(3), nil)
	owners.On("OrderOrganization", mock.Anything, kernel.ID(2)).Return(kernel.ID(4), nil)
	owners.On("ShipmentOrganization", mock.Anything, kernel.ID(7)).Return(kernel.ID(3), nil)
	owners.On("WarehouseOrganization", mock.Anything, kernel.ID(5)).Return(kernel.ID(3), nil)
	member := kernel.NewPrincipal(11, 3)

	assert.True(t, authorize(t, owners, member, "order.1"))
	assert.False(t, authorize(t, owners, member, "order.2"))
	assert.True(t, authorize(t, owners, member, "shipment.7"))
	assert.True(t, authorize(t, owners, member, "private-warehouse.5"))
	owners.AssertExpectations(t)
}

func TestAuthorizeChannelQueryHandler_Driver(t *testing.T) {
	owners := new(MockOwnershipReader)

	assert.True(t, authorize(t, owners, kernel.NewPrincipal(21, 3), "driver.21"))
	assert.True(t, authorize(t, owners, kernel.NewPrincipal(21, 0), "driver.21"))
	assert.False(t, authorize(t, owners, kernel.NewPrincipal(22, 3), "driver.21"))
	assert.False(t, authorize(t, owners, kernel.NewPrincipal(0, 3), "driver.21"))
}

func TestAuthorizeChannelQueryHandler_FailsClosed(t *testing.T) {
	owners := new(MockOwnershipReader)
	owners.On("ShipmentOrganization", mock.Anything, kernel.ID(8)).
		Return(kernel.ID(0), errs.NewObjectNotFoundError("shipment", kernel.ID(8)))
	owners.On("OrderOrganization", mock.Anything, kernel.ID(9)).
		Return(kernel.ID(0), errors.New("connection reset"))
	member := kernel.NewPrincipal(11, 3)

	tests := []struct {
		name      string
		principal kernel.Principal
		channel   string
	}{
		{"anonymous", kernel.Principal{}, "organization.3"},
		{"unparseable", member, "organization"},
		{"unknown kind", member, "invoice.3"},
		{"zero id", member, "order.0"},
		{"signed own organization", member, "organization.+3"},
		{"zero-padded own organization", member, "organization.03"},
		{"missing shipment", member, "shipment.8"},
		{"resolver error", member, "order.9"},
		{"org-less principal on order", kernel.NewPrincipal(11, 0), "order.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, authorize(t, owners, tt.principal, tt.channel))
		})
	}
}

func TestAuthorizeChannelQueryHandler_InvalidQuery(t *testing.T) {
	_, err := newAuthorizer(new(MockOwnershipReader)).Handle(t.Context(), queries.AuthorizeChannelQuery{})

	require.ErrorIs(t, err, queries.ErrAuthorizeChannelQueryIsNotConstructed)
}
