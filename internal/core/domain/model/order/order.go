package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned for a zero-value or nil order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrOrderIdentityIsSet is returned when AssignID is called twice.
	ErrOrderIdentityIsSet    = errors.New("order identity is already assigned")
)

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - belongs to a valid organization
//   - has a non-empty number and customer name
//   - status is a member of the order vocabulary
//
// The identity is assigned by the store on first insert, so a freshly created
// order reports a zero ID until the repository has added it.
type Order struct {
	id             kernel.ID
	organizationID kernel.ID
	number         string
	status         Status
	quoteID        *kernel.ID
	customerName   string
	orderDate      time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order.
//
// Example:
//
//	o, err := order.NewOrder(orgID, "ORD-00042", "Acme Retail", nil, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	organizationID kernel.ID,
	number string,
	customerName string,
	quoteID *kernel.ID,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrganizationID(organizationID),
		o.setNumber(number),
		o.setCustomerName(customerName),
		o.setQuoteID(quoteID),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Used by repositories only.
func RestoreOrder(
	id kernel.ID,
	organizationID kernel.ID,
	number string,
	status Status,
	quoteID *kernel.ID,
	customerName string,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		o.setOrganizationID(organizationID),
		o.setNumber(number),
		o.setStatus(status),
		o.setCustomerName(customerName),
		o.setQuoteID(quoteID),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}
	o.id = id

	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID records the identity generated by the store.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIdentityIsSet
	}
	o.id = id
	return nil
}

// IsEqual compares identities; unsaved orders are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id == other.id
}

// ID returns the store-generated identity, zero before the first save.
func (o *Order) ID() kernel.ID {
	return o.id
}

// OrganizationID returns the owning organization.
func (o *Order) OrganizationID() kernel.ID {
	return o.organizationID
}

// Number is the display reference, e.g. ORD-00042.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// QuoteID returns nil when the order was not created from a quote.
func (o *Order) QuoteID() *kernel.ID {
	if o.quoteID == nil {
		return nil
	}
	return o.quoteID.Ptr()
}

// CustomerName returns the customer the order was placed for.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// ChangeStatus moves the order to newStatus and returns the status it left.
// Re-applying the current status is accepted.
func (o *Order) ChangeStatus(newStatus Status) (Status, error) {
	if err := o.Validate(); err != nil {
		return Unknown, err
	}
	if err := newStatus.Validate(); err != nil {
		return Unknown, err
	}

	old := o.status
	o.status = newStatus
	return old, nil
}

func (o *Order) setOrganizationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("organization id", err)
	}
	o.organizationID = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setQuoteID(quoteID *kernel.ID) error {
	if quoteID == nil {
		return nil
	}
	if err := quoteID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("quote id", err)
	}
	o.quoteID = quoteID.Ptr()
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}

// String is used in logs.
func (o *Order) String() string {
	return fmt.Sprintf("Order(%d,%s,%s)", o.id, o.number, o.status)
}
