package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/sequence"
)

// CreateOrderCommandHandler issues an order number and persists a pending order.
//
// The number is claimed before the unit of work starts, so a failed insert
// leaves a gap in the order sequence rather than a duplicate.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, generator)
//	cmd, _ := NewCreateOrderCommand(orgID, "Acme Retail", nil, time.Now())
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Number() is "ORD-00042", created.Status() is order.Pending
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	numbers    NumberIssuer
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for persistence and a NumberIssuer for ORD- numbers.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, numbers NumberIssuer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
	}
}

// Handle validates the command, claims the next order number and stores the
// order in its own transaction. Returns the stored order with its identity assigned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	number, err := h.numbers.Next(ctx, sequence.Order)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrganizationID(), number, cmd.CustomerName(), cmd.QuoteID(), cmd.OrderDate())
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
