package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingRepository is the append-only tracking log. There is no update or delete.
type TrackingRepository interface {
	// Append stores the checkpoint and returns it with sequence and timestamp assigned by the store.
	Append(ctx context.Context, checkpoint *tracking.Checkpoint) (*tracking.Checkpoint, error)

	// Latest returns errs.ErrObjectNotFound when the shipment has no checkpoints.
	Latest(ctx context.Context, shipmentID kernel.ID) (*tracking.Checkpoint, error)

	// History is ordered most recent first.
	History(ctx context.Context, shipmentID kernel.ID) ([]*tracking.Checkpoint, error)
}
