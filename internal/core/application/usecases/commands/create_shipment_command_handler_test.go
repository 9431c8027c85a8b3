package commands_test

import (
	"errors"
	"strings"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand(t *testing.T) {
	orderID := kernel.ID(1)
	cmd, err := commands.NewCreateShipmentCommand(orgID, &orderID, nil, "Jane Roe", shipmentRoute)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, *cmd.OrderID())
	assert.Nil(t, cmd.DriverID())

	badDriver := kernel.ID(-1)
	_, err = commands.NewCreateShipmentCommand(0, nil, &badDriver, "Jane Roe", shipmentRoute)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(orgID, nil, nil, "Jane Roe", shipmentRoute)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	checkpoints := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Run(assignShipmentID(7)).Return(nil).Once(),
		uow.On("TrackingRepository").Return(checkpoints).Once(),
		checkpoints.On("Append", ctx, mock.MatchedBy(func(c *tracking.Checkpoint) bool {
			return c.ShipmentID() == 7 &&
				c.Location() == "Berlin Hub" &&
				c.Status() == shipment.Pending &&
				c.Detail() == commands.ShipmentCreatedDetail
		})).Return(nil, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(7), created.ID())
	assert.Equal(t, shipment.Pending, created.Status())
	assert.True(t, strings.HasPrefix(created.TrackingNumber(), shipment.TrackingNumberPrefix))
	assert.Equal(t, "Berlin Hub", created.CurrentLocation())

	shipments.AssertExpectations(t)
	checkpoints.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_InvalidRoute(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(orgID, nil, nil, "Jane Roe", shipment.Route{Origin: "Berlin Hub"})
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_AppendErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(orgID, nil, nil, "Jane Roe", shipmentRoute)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	checkpoints := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", ctx, mock.Anything).Run(assignShipmentID(7)).Return(nil).Once(),
		uow.On("TrackingRepository").Return(checkpoints).Once(),
		checkpoints.On("Append", ctx, mock.Anything).Return(nil, errors.New("append error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}
