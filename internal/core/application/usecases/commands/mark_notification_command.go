package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrMarkNotificationCommandIsNotConstructed is returned when a zero-value command reaches a handler.
	ErrMarkNotificationCommandIsNotConstructed = errors.New(
		"MarkNotificationCommand must be created via NewMarkNotificationCommand constructor",
	)
	// ErrPrincipalHasNoOrganization rejects principals without an organization.
	// Notifications are always organization-scoped, so such a principal sees nothing.
	ErrPrincipalHasNoOrganization = errs.NewValueIsRequiredError("organization id")
)

// MarkNotificationCommand flips the read state of one record the principal can see.
//
// Example:
//
//	cmd, err := NewMarkNotificationCommand(principal, notificationID, true)
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, cmd)
type MarkNotificationCommand struct { //nolint:recvcheck //using for validation
	principal      kernel.Principal
	notificationID kernel.UUID
	read           bool

	guard guard.ConstructorGuard
}

// NewMarkNotificationCommand creates a read (read == true) or unread request.
// Requires a principal with an organization and a valid notification identity.
func NewMarkNotificationCommand(
	principal kernel.Principal,
	notificationID kernel.UUID,
	read bool,
) (MarkNotificationCommand, error) {
	var principalErr error
	if principal.OrganizationID.IsZero() {
		principalErr = ErrPrincipalHasNoOrganization
	}

	if err := errors.Join(principalErr, notificationID.Validate()); err != nil {
		return MarkNotificationCommand{}, err
	}

	return MarkNotificationCommand{
		principal:      principal,
		notificationID: notificationID,
		read:           read,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationCommandIsNotConstructed)
}

// Principal returns the caller whose visibility scopes the change.
func (c MarkNotificationCommand) Principal() kernel.Principal { return c.principal }
func (c MarkNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c MarkNotificationCommand) Read() bool                  { return c.read }

// MarkNotificationCommandHandler changes the read state of a single notification.
//
// A record the principal cannot see is reported as missing, never as forbidden,
// so identifiers of other users' notifications are not disclosed.
//
// Example:
//
//	handler := NewMarkNotificationCommandHandler(uowFactory)
//	record, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
type MarkNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationCommandHandler creates the handler over a NotificationUoWFactory.
func NewMarkNotificationCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationCommandHandler {
	return MarkNotificationCommandHandler{uowFactory: uowFactory}
}

// Handle loads the record, checks visibility and stores the new read state.
// Marking read sets read_at to now; marking unread clears it. Returns the updated
// record, or errs.ErrObjectNotFound for records outside the principal's scope.
func (h *MarkNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	record, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, err
	}
	if !record.VisibleTo(cmd.Principal()) {
		return nil, errs.NewObjectNotFoundError("notification", cmd.NotificationID())
	}

	if cmd.Read() {
		record.MarkRead(time.Now().UTC())
	} else {
		record.MarkUnread()
	}

	if err = repo.UpdateReadState(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
