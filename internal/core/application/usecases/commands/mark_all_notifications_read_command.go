package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// ErrMarkAllNotificationsReadCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand marks every notification the principal can see as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand returns ErrPrincipalHasNoOrganization for principals without an organization.
func NewMarkAllNotificationsReadCommand(principal kernel.Principal) (MarkAllNotificationsReadCommand, error) {
	if principal.OrganizationID.IsZero() {
		return MarkAllNotificationsReadCommand{}, ErrPrincipalHasNoOrganization
	}
	return MarkAllNotificationsReadCommand{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// Principal returns the caller whose scope is marked.
func (c MarkAllNotificationsReadCommand) Principal() kernel.Principal {
	return c.principal
}

// MarkAllNotificationsReadCommandHandler marks every unread record in the
// principal's scope and reports how many changed.
//
// Example:
//
//	handler := NewMarkAllNotificationsReadCommandHandler(uowFactory)
//	cmd, _ := NewMarkAllNotificationsReadCommand(principal)
//
//	updated, err := handler.Handle(ctx, cmd)
//	fmt.Printf("%d notifications marked read", updated)
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates the handler over a NotificationUoWFactory.
func NewMarkAllNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{uowFactory: uowFactory}
}

// Handle runs one bulk update in a transaction. Already-read records keep their
// original read_at and are not counted.
func (h *MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsReadCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	affected, err := uow.NotificationRepository().MarkAllRead(ctx, cmd.Principal(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
