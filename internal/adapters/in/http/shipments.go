package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var body NewShipment
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(
		principal(c).OrganizationID,
		optionalID(body.OrderID),
		optionalID(body.DriverID),
		body.ReceiverName,
		shipment.Route{Origin: body.Origin, Destination: body.Destination},
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toShipment(created))
}

// RecordCheckpoint handles POST /api/v1/shipments/:id/checkpoints. Latitude
// and longitude are optional but must be sent together.
func (s *Server) RecordCheckpoint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body NewCheckpoint
	if err = c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	var geo *kernel.GeoPoint
	switch {
	case body.Latitude != nil && body.Longitude != nil:
		point, geoErr := kernel.NewGeoPoint(*body.Latitude, *body.Longitude)
		if geoErr != nil {
			return s.fail(c, geoErr)
		}
		geo = &point
	case body.Latitude != nil || body.Longitude != nil:
		return s.fail(c, errs.NewValueIsRequiredError("latitude and longitude"))
	}

	cmd, err := commands.NewRecordCheckpointCommand(id, body.Location, body.Detail, geo)
	if err != nil {
		return s.fail(c, err)
	}

	stored, err := s.handlers.RecordCheckpoint.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toCheckpoint(stored))
}

// GetTrackingHistory handles GET /api/v1/shipments/:id/tracking.
func (s *Server) GetTrackingHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetTrackingHistoryQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	history, err := s.handlers.TrackingHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCheckpoints(history))
}

// GetLatestCheckpoint handles GET /api/v1/shipments/:id/tracking/latest.
func (s *Server) GetLatestCheckpoint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetLatestCheckpointQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	latest, err := s.handlers.LatestCheckpoint.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCheckpoint(latest))
}
