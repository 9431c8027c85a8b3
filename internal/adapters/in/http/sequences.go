package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/sequence"

	"github.com/labstack/echo/v4"
)

// IssueDocumentNumber handles POST /api/v1/sequences/:family.
func (s *Server) IssueDocumentNumber(c echo.Context) error {
	family, err := sequence.ParseFamily(c.Param("family"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewIssueDocumentNumberCommand(family)
	if err != nil {
		return s.fail(c, err)
	}

	number, err := s.handlers.IssueDocumentNumber.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, DocumentNumber{Family: c.Param("family"), Number: number})
}
