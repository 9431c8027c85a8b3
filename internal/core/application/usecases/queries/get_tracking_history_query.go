// Package queries contains the read side: tracking history, notification
// listings and channel authorization. Queries never change state.
package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
		"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
	)
	ErrGetLatestCheckpointQueryIsNotConstructed = errors.New(
		"GetLatestCheckpointQuery must be created via NewGetLatestCheckpointQuery constructor",
	)
)

// GetTrackingHistoryQuery reads the full tracking log of a shipment, most recent first.
//
// Example:
//
//	query, err := NewGetTrackingHistoryQuery(shipmentID)
//	history, err := handler.Handle(ctx, query)
//	for _, c := range history {
//	    fmt.Printf("%s %s at %s\n", c.RecordedAt(), c.Status(), c.Location())
//	}
type GetTrackingHistoryQuery struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for the given shipment. Requires a positive ID.
func NewGetTrackingHistoryQuery(shipmentID kernel.ID) (GetTrackingHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}
	return GetTrackingHistoryQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose log is read.
func (q GetTrackingHistoryQuery) ShipmentID() kernel.ID {
	return q.shipmentID
}

// GetTrackingHistoryQueryHandler reads the append-only tracking log.
//
// Example:
//
//	handler := NewGetTrackingHistoryQueryHandler(trackingRepo)
//	history, err := handler.Handle(ctx, query)
type GetTrackingHistoryQueryHandler struct {
	log ports.TrackingRepository
}

// NewGetTrackingHistoryQueryHandler creates a handler over the tracking repository.
func NewGetTrackingHistoryQueryHandler(log ports.TrackingRepository) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{log: log}
}

// Handle returns an empty slice for shipments without checkpoints.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]*tracking.Checkpoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history, err := h.log.History(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = make([]*tracking.Checkpoint, 0)
	}
	return history, nil
}

// GetLatestCheckpointQuery reads the most recent checkpoint of a shipment.
type GetLatestCheckpointQuery struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetLatestCheckpointQuery creates a query for the given shipment. Requires a positive ID.
func NewGetLatestCheckpointQuery(shipmentID kernel.ID) (GetLatestCheckpointQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetLatestCheckpointQuery{}, err
	}
	return GetLatestCheckpointQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLatestCheckpointQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestCheckpointQueryIsNotConstructed)
}

func (q GetLatestCheckpointQuery) ShipmentID() kernel.ID {
	return q.shipmentID
}

// GetLatestCheckpointQueryHandler returns where a shipment was seen last.
type GetLatestCheckpointQueryHandler struct {
	log ports.TrackingRepository
}

func NewGetLatestCheckpointQueryHandler(log ports.TrackingRepository) GetLatestCheckpointQueryHandler {
	return GetLatestCheckpointQueryHandler{log: log}
}

// Handle returns errs.ErrObjectNotFound when the shipment has no checkpoints.
func (h GetLatestCheckpointQueryHandler) Handle(
	ctx context.Context,
	query GetLatestCheckpointQuery,
) (*tracking.Checkpoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.log.Latest(ctx, query.ShipmentID())
}
