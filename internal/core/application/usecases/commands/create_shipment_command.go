package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCreateShipmentCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand opens a consignment between two locations.
// The tracking number is generated by the handler; order and driver are optional.
//
// Example:
//
//	route := shipment.Route{Origin: "Berlin Hub", Destination: "Hamburg Depot"}
//	cmd, err := NewCreateShipmentCommand(orgID, orderID.Ptr(), nil, "Jane Roe", route)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.ID
	orderID        *kernel.ID
	driverID       *kernel.ID
	receiverName   string
	route          shipment.Route

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// Identities are validated here; receiver and route rules are enforced by the
// shipment aggregate when the handler builds it.
func NewCreateShipmentCommand(
	organizationID kernel.ID,
	orderID *kernel.ID,
	driverID *kernel.ID,
	receiverName string,
	route shipment.Route,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	// Receiver and route rules live on the aggregate.
	cmd.receiverName = receiverName
	cmd.route = route

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrganizationID returns the owning organization.
func (c CreateShipmentCommand) OrganizationID() kernel.ID { return c.organizationID }
func (c CreateShipmentCommand) OrderID() *kernel.ID       { return c.orderID }
func (c CreateShipmentCommand) DriverID() *kernel.ID      { return c.driverID }
func (c CreateShipmentCommand) ReceiverName() string      { return c.receiverName }
func (c CreateShipmentCommand) Route() shipment.Route     { return c.route }

func (c *CreateShipmentCommand) setOrganizationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("organization id", err)
	}
	c.organizationID = id
	return nil
}

func (c *CreateShipmentCommand) setOrderID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	c.orderID = id.Ptr()
	return nil
}

func (c *CreateShipmentCommand) setDriverID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver id", err)
	}
	c.driverID = id.Ptr()
	return nil
}
