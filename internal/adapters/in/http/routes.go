package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register mounts the health check and every /api/v1 route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.identify)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.TransitionOrderStatus)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/status", s.TransitionShipmentStatus)
	api.POST("/shipments/:id/checkpoints", s.RecordCheckpoint)
	api.GET("/shipments/:id/tracking", s.GetTrackingHistory)
	api.GET("/shipments/:id/tracking/latest", s.GetLatestCheckpoint)

	api.POST("/sequences/:family", s.IssueDocumentNumber)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/:id/unread", s.MarkNotificationUnread)

	api.POST("/broadcasting/auth", s.AuthorizeChannel)
	api.GET("/broadcasting/stream", s.Stream)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
