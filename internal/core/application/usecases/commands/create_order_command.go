package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrCreateOrderCommandIsNotConstructed is returned when a zero-value command reaches a handler.
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrCustomerNameIsRequired rejects blank customer names.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrOrderDateIsRequired rejects a zero order date.
	ErrOrderDateIsRequired    = errs.NewValueIsRequiredError("order date")
)

// CreateOrderCommand represents a request to register a new customer order.
// The order number is issued by the handler from the "order" sequence family.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orgID, "Acme Retail", nil, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	fmt.Printf("Order %s created", created.Number())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.ID
	customerName   string
	quoteID        *kernel.ID
	orderDate      time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order for an organization.
// Validates the organization identity, a non-blank customer name, the optional
// quote reference and a non-zero order date. All violations are joined into
// the returned error.
func NewCreateOrderCommand(
	organizationID kernel.ID,
	customerName string,
	quoteID *kernel.ID,
	orderDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setCustomerName(customerName),
		cmd.setQuoteID(quoteID),
		cmd.setOrderDate(orderDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrganizationID returns the owning organization.
func (c CreateOrderCommand) OrganizationID() kernel.ID {
	return c.organizationID
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// QuoteID returns the accepted quote the order came from, or nil.
func (c CreateOrderCommand) QuoteID() *kernel.ID {
	return c.quoteID
}

// OrderDate returns the business date of the order.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *CreateOrderCommand) setOrganizationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.organizationID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setQuoteID(quoteID *kernel.ID) error {
	if quoteID == nil {
		return nil
	}
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID.Ptr()
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}
	c.orderDate = orderDate
	return nil
}
