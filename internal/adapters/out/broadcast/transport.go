// Package broadcast fans committed status changes out to real-time subscribers.
//
// A Publisher encodes one Envelope per target channel and hands it to a
// Transport. Three transports exist:
//   - MemoryHub: in-process, for single-node deployments and tests
//   - RedisTransport: Redis PUBLISH/SUBSCRIBE, one Redis channel per broadcast channel
//   - AMQPTransport: a RabbitMQ topic exchange routed by channel name
//
// Delivery is best effort on every transport. Slow subscribers lose messages.
package broadcast

import (
	"context"
	"errors"
)

var ErrTransportClosed = errors.New("broadcast transport is closed")

// Transport moves encoded envelopes between publishers and subscribers of a channel.
type Transport interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe delivers payloads published after it returns. The returned
	// channel is closed once ctx is cancelled or the transport shuts down.
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}
