package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications?unread=&limit=&offset=.
func (s *Server) ListNotifications(c echo.Context) error {
	var (
		onlyUnread    bool
		limit, offset int
	)
	err := echo.QueryParamsBinder(c).
		Bool("unread", &onlyUnread).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return s.badRequest(c, "Invalid query parameters")
	}

	query, err := queries.NewListNotificationsQuery(principal(c), onlyUnread, limit, offset)
	if err != nil {
		return s.fail(c, err)
	}

	page, err := s.handlers.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	items := make([]Notification, len(page.Items))
	for i, view := range page.Items {
		items[i] = toNotificationView(view)
	}

	return c.JSON(http.StatusOK, NotificationPage{Items: items, UnreadCount: page.UnreadCount})
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	return s.markNotification(c, true)
}

// MarkNotificationUnread handles POST /api/v1/notifications/:id/unread.
func (s *Server) MarkNotificationUnread(c echo.Context) error {
	return s.markNotification(c, false)
}

func (s *Server) markNotification(c echo.Context, read bool) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.badRequest(c, "Invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationCommand(principal(c), id, read)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.MarkNotification.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toNotification(updated))
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand(principal(c))
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.MarkAllNotificationsRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, MarkedCount{Updated: updated})
}
