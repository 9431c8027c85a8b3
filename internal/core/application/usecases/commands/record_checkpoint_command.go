package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrRecordCheckpointCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrRecordCheckpointCommandIsNotConstructed = errors.New(
	"RecordCheckpointCommand must be created via NewRecordCheckpointCommand constructor",
)

// RecordCheckpointCommand reports a shipment at a new location without changing its status.
type RecordCheckpointCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	location   string
	detail     string
	geo        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRecordCheckpointCommand builds the command. The location label is required
// and trimmed; geo is optional and copied so later changes by the caller are not seen.
func NewRecordCheckpointCommand(
	shipmentID kernel.ID,
	location string,
	detail string,
	geo *kernel.GeoPoint,
) (RecordCheckpointCommand, error) {
	location = strings.TrimSpace(location)

	var locationErr error
	if location == "" {
		locationErr = errs.NewValueIsRequiredError("location")
	}

	var geoErr error
	if geo != nil {
		geoErr = geo.Validate()
	}

	if err := errors.Join(shipmentID.Validate(), locationErr, geoErr); err != nil {
		return RecordCheckpointCommand{}, err
	}

	cmd := RecordCheckpointCommand{
		shipmentID: shipmentID,
		location:   location,
		detail:     strings.TrimSpace(detail),
		guard:      guard.NewConstructorGuard(),
	}
	if geo != nil {
		point := *geo
		cmd.geo = &point
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrRecordCheckpointCommandIsNotConstructed)
}

// ShipmentID returns the shipment being moved.
func (c RecordCheckpointCommand) ShipmentID() kernel.ID  { return c.shipmentID }
func (c RecordCheckpointCommand) Location() string       { return c.location }
func (c RecordCheckpointCommand) Detail() string         { return c.detail }
func (c RecordCheckpointCommand) Geo() *kernel.GeoPoint { return c.geo }
