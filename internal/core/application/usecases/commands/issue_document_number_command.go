package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/sequence"
	"logistics/internal/pkg/guard"
)

// ErrIssueDocumentNumberCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrIssueDocumentNumberCommandIsNotConstructed = errors.New(
	"IssueDocumentNumberCommand must be created via NewIssueDocumentNumberCommand constructor",
)

// IssueDocumentNumberCommand asks for the next number of a document family,
// for documents such as invoices and quotes that live outside this service.
type IssueDocumentNumberCommand struct { //nolint:recvcheck //using for validation
	family sequence.Family

	guard guard.ConstructorGuard
}

// NewIssueDocumentNumberCommand rejects families outside the closed set.
func NewIssueDocumentNumberCommand(family sequence.Family) (IssueDocumentNumberCommand, error) {
	if err := family.Validate(); err != nil {
		return IssueDocumentNumberCommand{}, err
	}
	return IssueDocumentNumberCommand{family: family, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueDocumentNumberCommand) Validate() error {
	return c.guard.Validate(ErrIssueDocumentNumberCommandIsNotConstructed)
}

// Family returns the requested document family.
func (c IssueDocumentNumberCommand) Family() sequence.Family {
	return c.family
}

// IssueDocumentNumberCommandHandler hands out the next formatted number of a family.
//
// Example:
//
//	handler := NewIssueDocumentNumberCommandHandler(generator)
//	cmd, _ := NewIssueDocumentNumberCommand(sequence.Invoice)
//
//	number, err := handler.Handle(ctx, cmd) // "INV-000017"
type IssueDocumentNumberCommandHandler struct {
	numbers NumberIssuer
}

// NewIssueDocumentNumberCommandHandler wraps a NumberIssuer.
func NewIssueDocumentNumberCommandHandler(numbers NumberIssuer) IssueDocumentNumberCommandHandler {
	return IssueDocumentNumberCommandHandler{numbers: numbers}
}

// Handle claims and returns the number. The claim is durable on return even if
// the caller never uses the number.
func (h *IssueDocumentNumberCommandHandler) Handle(ctx context.Context, cmd IssueDocumentNumberCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	return h.numbers.Next(ctx, cmd.Family())
}
