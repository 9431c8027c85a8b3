package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"logistics/internal/core/domain/model/event"
)

// Envelope is the JSON document delivered on a channel.
type Envelope struct {
	Event   string         `json:"event"`
	Channel string         `json:"channel"`
	Data    map[string]any `json:"data"`
}

// Publisher implements ports.EventPublisher on top of a Transport.
type Publisher struct {
	transport Transport
	logger    *slog.Logger
}

// NewPublisher creates a publisher over transport.
func NewPublisher(transport Transport, logger *slog.Logger) *Publisher {
	return &Publisher{
		transport: transport,
		logger:    logger.With("component", "broadcast-publisher"),
	}
}

// Publish sends one envelope per channel of evt. A failing channel does not
// stop the others and nothing is returned to the caller.
func (p *Publisher) Publish(ctx context.Context, evt event.StatusChanged) {
	data := evt.Payload()

	for _, ch := range evt.Channels() {
		name := ch.Name()
		payload, err := json.Marshal(Envelope{Event: evt.Name(), Channel: name, Data: data})
		if err != nil {
			p.logger.WarnContext(ctx, "failed to encode broadcast envelope",
				"event", evt.Name(), "channel", name, "error", err)
			continue
		}

		if err = p.transport.Publish(ctx, name, payload); err != nil {
			p.logger.WarnContext(ctx, "failed to broadcast status change",
				"event", evt.Name(), "channel", name, "error", err)
			continue
		}

		p.logger.DebugContext(ctx, "status change broadcast", "event", evt.Name(), "channel", name)
	}
}
