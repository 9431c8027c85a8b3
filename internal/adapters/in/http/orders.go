package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. The order belongs to the caller's
// organization and defaults to today's date.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	orderDate := time.Now().UTC()
	if body.OrderDate != nil {
		orderDate = *body.OrderDate
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal(c).OrganizationID,
		body.CustomerName,
		optionalID(body.QuoteID),
		orderDate,
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrder(created))
}

// TransitionOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrderStatus(c echo.Context) error {
	return s.transition(c, kernel.EntityOrder)
}

// TransitionShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) TransitionShipmentStatus(c echo.Context) error {
	return s.transition(c, kernel.EntityShipment)
}

func (s *Server) transition(c echo.Context, kind kernel.EntityKind) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewTransitionStatusCommand(kind, id, body.Status, principal(c).UserID)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.TransitionStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	response := Transition{
		Entity:    kind.String(),
		ID:        int64(id),
		OldStatus: result.OldStatus,
		NewStatus: result.NewStatus,
	}
	if result.Checkpoint != nil {
		checkpoint := toCheckpoint(result.Checkpoint)
		response.Checkpoint = &checkpoint
	}

	return c.JSON(http.StatusOK, response)
}
