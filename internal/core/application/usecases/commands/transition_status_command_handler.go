package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
)

// ErrInvalidTransition reports a target status outside the entity's vocabulary.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionResult is the committed outcome of a status change.
// Exactly one of Order and Shipment is set. Checkpoint is set for shipments.
type TransitionResult struct {
	Kind       kernel.EntityKind
	Order      *order.Order
	Shipment   *shipment.Shipment
	Checkpoint *tracking.Checkpoint
	OldStatus  string
	NewStatus  string
}

// TransitionStatusCommandHandler is the single write path for status changes.
//
// The entity row and, for shipments, its tracking checkpoint are written in one
// unit of work under a row lock. Notification and broadcast run only after the
// commit and can never fail the transition.
type TransitionStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewTransitionStatusCommandHandler creates the handler. Requires a UoWFactory for
// the write, plus the notifier and publisher that run after a successful commit.
func NewTransitionStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) TransitionStatusCommandHandler {
	return TransitionStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger.With("component", "TransitionStatusCommandHandler"),
	}
}

// Handle validates the move against the entity's current status and persists it.
//
// Returns errs.ErrObjectNotFound for unknown entities and an invalid-transition
// error when the status graph forbids the move. Side effects never change the
// returned result.
func (h *TransitionStatusCommandHandler) Handle(ctx context.Context, cmd TransitionStatusCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var (
		result TransitionResult
		evt    event.StatusChanged
		err    error
	)

	switch cmd.Kind() {
	case kernel.EntityOrder:
		result, evt, err = h.transitionOrder(ctx, cmd)
	case kernel.EntityShipment:
		result, evt, err = h.transitionShipment(ctx, cmd)
	default:
		err = cmd.Kind().Validate()
	}
	if err != nil {
		return TransitionResult{}, err
	}

	// The transition is durable now; its side effects must not die with the request.
	h.afterCommit(context.WithoutCancel(ctx), evt)

	return result, nil
}

func (h *TransitionStatusCommandHandler) transitionOrder(
	ctx context.Context,
	cmd TransitionStatusCommand,
) (TransitionResult, event.StatusChanged, error) {
	newStatus, err := order.ParseStatus(cmd.NewStatus())
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	oldStatus, err := aggregate.ChangeStatus(newStatus)
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	evt := event.NewOrderStatusChanged(aggregate, oldStatus, cmd.Actor(), time.Now().UTC())
	return TransitionResult{
		Kind:      kernel.EntityOrder,
		Order:     aggregate,
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}, evt, nil
}

func (h *TransitionStatusCommandHandler) transitionShipment(
	ctx context.Context,
	cmd TransitionStatusCommand,
) (TransitionResult, event.StatusChanged, error) {
	newStatus, err := shipment.ParseStatus(cmd.NewStatus())
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	oldStatus, err := aggregate.ChangeStatus(newStatus)
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	checkpoint, err := tracking.ForShipment(aggregate, event.ShipmentStatusMessage(newStatus), nil)
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}
	checkpoint, err = uow.TrackingRepository().Append(ctx, checkpoint)
	if err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, event.StatusChanged{}, err
	}

	evt := event.NewShipmentStatusChanged(aggregate, oldStatus, cmd.Actor(), time.Now().UTC())
	return TransitionResult{
		Kind:       kernel.EntityShipment,
		Shipment:   aggregate,
		Checkpoint: checkpoint,
		OldStatus:  oldStatus.String(),
		NewStatus:  newStatus.String(),
	}, evt, nil
}

// afterCommit runs the best-effort side effects of a committed transition.
func (h *TransitionStatusCommandHandler) afterCommit(ctx context.Context, evt event.StatusChanged) {
	if err := h.notifier.Notify(ctx, evt); err != nil {
		h.logger.WarnContext(ctx, "notification not recorded",
			"event", evt.Name(),
			"entity_id", evt.EntityID().String(),
			"error", err)
	}

	h.publisher.Publish(ctx, evt)
}
