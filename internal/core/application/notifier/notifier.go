// Package notifier records the notifications produced by committed status changes.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/services"
)

// Notifier applies the notification policy and stores the resulting record in
// its own unit of work, separate from the transition that caused it.
type Notifier struct {
	policy     services.NotificationPolicy
	uowFactory commands.NotificationUoWFactory
	logger     *slog.Logger
}

// New creates a notifier that stores what policy decides.
func New(policy services.NotificationPolicy, uowFactory commands.NotificationUoWFactory, logger *slog.Logger) *Notifier {
	return &Notifier{
		policy:     policy,
		uowFactory: uowFactory,
		logger:     logger.With("component", "Notifier"),
	}
}

// Notify implements ports.Notifier.
func (n *Notifier) Notify(ctx context.Context, evt event.StatusChanged) error {
	record, ok := n.policy.Decide(evt)
	if !ok {
		return nil
	}

	uow := n.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin notification: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Add(ctx, record); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("commit notification: %w", err)
	}

	n.logger.DebugContext(ctx, "notification recorded",
		"notification_id", record.ID().String(),
		"organization_id", record.OrganizationID().String(),
		"type", record.Type().String())

	return nil
}
