package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
)

// ShipmentCreatedDetail is the detail of the first checkpoint of every shipment.
const ShipmentCreatedDetail = "Shipment created"

// CreateShipmentCommandHandler persists a pending shipment together with its
// first checkpoint at the origin, in one unit of work, so a shipment never
// exists without tracking history.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(created.TrackingNumber()) // TRK-4F2A9C01B7DE
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory exposing both shipment and tracking repositories.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{uowFactory: uowFactory}
}

// Handle generates a TRK- tracking number, stores the shipment and appends the
// "Shipment created" checkpoint. Both writes commit or roll back together.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		cmd.OrganizationID(),
		shipment.NewTrackingNumber(),
		cmd.ReceiverName(),
		cmd.Route(),
		cmd.OrderID(),
		cmd.DriverID(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	first, err := tracking.ForShipment(aggregate, ShipmentCreatedDetail, nil)
	if err != nil {
		return nil, err
	}
	if _, err = uow.TrackingRepository().Append(ctx, first); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
