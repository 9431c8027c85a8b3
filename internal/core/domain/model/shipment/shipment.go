package shipment

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned for a zero-value or nil shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
	// ErrShipmentIdentityIsSet is returned when AssignID is called twice.
	ErrShipmentIdentityIsSet    = errors.New("shipment identity is already assigned")
)

// Shipment is the aggregate root for a consignment.
//
// Invariants:
//   - tracking number is set at creation and never changes
//   - origin and destination labels are non-empty
//   - current location starts at the origin
type Shipment struct {
	id              kernel.ID
	organizationID  kernel.ID
	trackingNumber  string
	status          Status
	orderID         *kernel.ID
	driverID        *kernel.ID
	receiverName    string
	origin          string
	destination     string
	currentLocation string

	guard guard.ConstructorGuard
}

// Route groups the labels a shipment travels between.
type Route struct {
	Origin      string
	Destination string
}

// NewShipment creates a pending shipment located at its origin.
func NewShipment(
	organizationID kernel.ID,
	trackingNumber string,
	receiverName string,
	route Route,
	orderID *kernel.ID,
	driverID *kernel.ID,
) (*Shipment, error) {
	s := &Shipment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setOrganizationID(organizationID),
		s.setTrackingNumber(trackingNumber),
		s.setReceiverName(receiverName),
		s.setRoute(route),
		s.setOrderID(orderID),
		s.setDriverID(driverID),
	); err != nil {
		return nil, err
	}
	s.currentLocation = s.origin

	return s, nil
}

// RestoreShipment rebuilds a persisted shipment. Used by repositories only.
func RestoreShipment(
	id kernel.ID,
	organizationID kernel.ID,
	trackingNumber string,
	status Status,
	receiverName string,
	route Route,
	currentLocation string,
	orderID *kernel.ID,
	driverID *kernel.ID,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		s.setOrganizationID(organizationID),
		s.setTrackingNumber(trackingNumber),
		s.setStatus(status),
		s.setReceiverName(receiverName),
		s.setRoute(route),
		s.setOrderID(orderID),
		s.setDriverID(driverID),
	); err != nil {
		return nil, err
	}
	s.id = id
	s.currentLocation = strings.TrimSpace(currentLocation)

	return s, nil
}

// Validate ensures the shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// AssignID records the identity generated by the store.
func (s *Shipment) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !s.id.IsZero() {
		return ErrShipmentIdentityIsSet
	}
	s.id = id
	return nil
}

// ID returns the store-generated identity, zero before the first save.
func (s *Shipment) ID() kernel.ID {
	return s.id
}

// OrganizationID returns the owning organization.
func (s *Shipment) OrganizationID() kernel.ID {
	return s.organizationID
}

// TrackingNumber returns the public reference customers track by.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// OrderID returns nil for shipments not tied to an order.
func (s *Shipment) OrderID() *kernel.ID {
	if s.orderID == nil {
		return nil
	}
	return s.orderID.Ptr()
}

// DriverID returns nil while no driver is assigned.
func (s *Shipment) DriverID() *kernel.ID {
	if s.driverID == nil {
		return nil
	}
	return s.driverID.Ptr()
}

// HasDriver reports whether a driver is assigned.
func (s *Shipment) HasDriver() bool {
	return s.driverID != nil
}

func (s *Shipment) ReceiverName() string {
	return s.receiverName
}

func (s *Shipment) Origin() string {
	return s.origin
}

func (s *Shipment) Destination() string {
	return s.destination
}

// CurrentLocation is empty until the first location update.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// LocationLabel is the place recorded with a status checkpoint: the destination
// once delivered, otherwise the current location, falling back to the origin.
func (s *Shipment) LocationLabel() string {
	if s.status == Delivered {
		return s.destination
	}
	if s.currentLocation != "" {
		return s.currentLocation
	}
	return s.origin
}

// ChangeStatus moves the shipment to newStatus and returns the status it left.
func (s *Shipment) ChangeStatus(newStatus Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := newStatus.Validate(); err != nil {
		return Unknown, err
	}

	old := s.status
	s.status = newStatus
	return old, nil
}

// MoveTo updates the current location label.
func (s *Shipment) MoveTo(location string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	s.currentLocation = location
	return nil
}

func (s *Shipment) setOrganizationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("organization id", err)
	}
	s.organizationID = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setReceiverName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	s.receiverName = name
	return nil
}

func (s *Shipment) setRoute(route Route) error {
	origin := strings.TrimSpace(route.Origin)
	destination := strings.TrimSpace(route.Destination)

	var err error
	if origin == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("origin"))
	}
	if destination == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("destination"))
	}
	if err != nil {
		return err
	}

	s.origin = origin
	s.destination = destination
	return nil
}

func (s *Shipment) setOrderID(orderID *kernel.ID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	s.orderID = orderID.Ptr()
	return nil
}

func (s *Shipment) setDriverID(driverID *kernel.ID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver id", err)
	}
	s.driverID = driverID.Ptr()
	return nil
}
