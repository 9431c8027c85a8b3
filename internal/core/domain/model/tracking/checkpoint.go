// Package tracking models the append-only movement log of shipments.
package tracking

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCheckpointIsNotConstructed is returned for a zero-value or nil checkpoint.
var ErrCheckpointIsNotConstructed = errors.New("Checkpoint must be created via NewCheckpoint or RestoreCheckpoint")

// Checkpoint is one immutable entry of a shipment's tracking history.
//
// Sequence and RecordedAt are assigned by the store when the checkpoint is
// appended; a checkpoint built by NewCheckpoint reports zero for both.
// History is ordered by RecordedAt, ties broken by Sequence.
type Checkpoint struct {
	id         kernel.UUID
	sequence   int64
	shipmentID kernel.ID
	location   string
	status     shipment.Status
	detail     string
	geo        *kernel.GeoPoint
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewCheckpoint prepares a checkpoint for appending. geo may be nil.
func NewCheckpoint(
	shipmentID kernel.ID,
	location string,
	status shipment.Status,
	detail string,
	geo *kernel.GeoPoint,
) (*Checkpoint, error) {
	c := &Checkpoint{
		id:     kernel.NewUUID(),
		detail: strings.TrimSpace(detail),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setShipmentID(shipmentID),
		c.setLocation(location),
		c.setStatus(status),
		c.setGeo(geo),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// ForShipment records the shipment's current status at its location label.
func ForShipment(s *shipment.Shipment, detail string, geo *kernel.GeoPoint) (*Checkpoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return NewCheckpoint(s.ID(), s.LocationLabel(), s.Status(), detail, geo)
}

// RestoreCheckpoint rebuilds a stored checkpoint. Used by repositories only.
func RestoreCheckpoint(
	id kernel.UUID,
	sequence int64,
	shipmentID kernel.ID,
	location string,
	status shipment.Status,
	detail string,
	geo *kernel.GeoPoint,
	recordedAt time.Time,
) (*Checkpoint, error) {
	c := &Checkpoint{
		detail: detail,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		c.setShipmentID(shipmentID),
		c.setLocation(location),
		c.setStatus(status),
		c.setGeo(geo),
	); err != nil {
		return nil, err
	}
	if sequence <= 0 {
		return nil, errs.NewValueIsInvalidError("sequence")
	}
	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recorded at")
	}
	c.id = id
	c.sequence = sequence
	c.recordedAt = recordedAt

	return c, nil
}

// Validate ensures the checkpoint was created through a constructor.
func (c *Checkpoint) Validate() error {
	if c == nil {
		return ErrCheckpointIsNotConstructed
	}
	return c.guard.Validate(ErrCheckpointIsNotConstructed)
}

func (c *Checkpoint) ID() kernel.UUID         { return c.id }
func (c *Checkpoint) Sequence() int64         { return c.sequence }
func (c *Checkpoint) ShipmentID() kernel.ID   { return c.shipmentID }
func (c *Checkpoint) Location() string        { return c.location }
func (c *Checkpoint) Status() shipment.Status { return c.status }
func (c *Checkpoint) Detail() string          { return c.detail }
func (c *Checkpoint) RecordedAt() time.Time   { return c.recordedAt }

// Geo returns nil when no GPS fix was attached.
func (c *Checkpoint) Geo() *kernel.GeoPoint {
	if c.geo == nil {
		return nil
	}
	g := *c.geo
	return &g
}

// IsAppended reports whether the store has assigned sequence and timestamp.
func (c *Checkpoint) IsAppended() bool {
	return c.sequence > 0
}

func (c *Checkpoint) setShipmentID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipment id", err)
	}
	c.shipmentID = id
	return nil
}

func (c *Checkpoint) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *Checkpoint) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Checkpoint) setGeo(geo *kernel.GeoPoint) error {
	if geo == nil {
		return nil
	}
	if err := geo.Validate(); err != nil {
		return err
	}
	g := *geo
	c.geo = &g
	return nil
}
