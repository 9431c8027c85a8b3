package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal failures are logged and their
// details are not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
