package http

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID         = "X-User-ID"
	HeaderOrganizationID = "X-Organization-ID"

	principalKey = "principal"
)

// identify reads the gateway headers into a kernel.Principal. Absent headers
// leave the matching part zero; malformed ones are rejected.
func (s *Server) identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := headerID(c, HeaderUserID)
		if err != nil {
			return s.fail(c, err)
		}
		orgID, err := headerID(c, HeaderOrganizationID)
		if err != nil {
			return s.fail(c, err)
		}

		c.Set(principalKey, kernel.NewPrincipal(userID, orgID))
		return next(c)
	}
}

func headerID(c echo.Context, name string) (kernel.ID, error) {
	raw := c.Request().Header.Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := kernel.ParseID(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func principal(c echo.Context) kernel.Principal {
	p, _ := c.Get(principalKey).(kernel.Principal)
	return p
}

func pathID(c echo.Context) (kernel.ID, error) {
	return kernel.ParseID(c.Param("id"))
}
