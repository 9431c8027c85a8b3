package http

import (
	"fmt"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/channel"

	"github.com/labstack/echo/v4"
)

const streamHeartbeat = 25 * time.Second

// AuthorizeChannel handles POST /api/v1/broadcasting/auth. It answers 200 when
// the caller may join channel_name and 403 otherwise.
func (s *Server) AuthorizeChannel(c echo.Context) error {
	var body ChannelAuth
	if err := c.Bind(&body); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	allowed, err := s.authorize(c, body.ChannelName)
	if err != nil {
		return s.fail(c, err)
	}
	if !allowed {
		return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "Forbidden"})
	}

	return c.JSON(http.StatusOK, ChannelAuth{ChannelName: body.ChannelName})
}

// Stream handles GET /api/v1/broadcasting/stream?channel=. Each envelope
// published on the channel is written as one server-sent event until the
// client disconnects.
func (s *Server) Stream(c echo.Context) error {
	name := c.QueryParam("channel")

	allowed, err := s.authorize(c, name)
	if err != nil {
		return s.fail(c, err)
	}
	if !allowed {
		return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "Forbidden"})
	}

	ch, err := channel.Parse(name)
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	messages, err := s.streams.Subscribe(ctx, ch.Name())
	if err != nil {
		return s.fail(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if _, err = fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case payload, ok := <-messages:
			if !ok {
				return nil
			}
			if _, err = fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func (s *Server) authorize(c echo.Context, name string) (bool, error) {
	return s.handlers.AuthorizeChannel.Handle(
		c.Request().Context(),
		queries.NewAuthorizeChannelQuery(principal(c), name),
	)
}
