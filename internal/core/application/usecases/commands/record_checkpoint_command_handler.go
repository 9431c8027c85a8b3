package commands

import (
	"context"

	"logistics/internal/core/domain/model/tracking"
)

// RecordCheckpointCommandHandler moves a shipment and logs the move with its
// current status, so the latest checkpoint always agrees with the shipment row.
//
// The shipment row is locked for the duration of the unit of work; concurrent
// checkpoints for the same shipment are serialized and keep their order.
//
// Example:
//
//	handler := NewRecordCheckpointCommandHandler(uowFactory)
//	cmd, _ := NewRecordCheckpointCommand(shipmentID, "Hanover Sort Center", "arrived", nil)
//
//	checkpoint, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(checkpoint.Sequence(), checkpoint.RecordedAt())
type RecordCheckpointCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRecordCheckpointCommandHandler creates a handler for movement checkpoints.
func NewRecordCheckpointCommandHandler(uowFactory ShipmentUoWFactory) RecordCheckpointCommandHandler {
	return RecordCheckpointCommandHandler{uowFactory: uowFactory}
}

// Handle updates the shipment location and appends a checkpoint carrying the
// unchanged status. Returns the stored checkpoint with its sequence and timestamp.
// Returns errs.ErrObjectNotFound for an unknown shipment.
func (h *RecordCheckpointCommandHandler) Handle(
	ctx context.Context,
	cmd RecordCheckpointCommand,
) (*tracking.Checkpoint, error) {
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

	shipments := uow.ShipmentRepository()
	aggregate, err := shipments.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MoveTo(cmd.Location()); err != nil {
		return nil, err
	}
	if err = shipments.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	checkpoint, err := tracking.NewCheckpoint(
		aggregate.ID(), cmd.Location(), aggregate.Status(), cmd.Detail(), cmd.Geo(),
	)
	if err != nil {
		return nil, err
	}
	stored, err := uow.TrackingRepository().Append(ctx, checkpoint)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
