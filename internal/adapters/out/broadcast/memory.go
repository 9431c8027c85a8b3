package broadcast

import (
	"context"
	"sync"
	"time"

	fanout "github.com/dmitrymomot/saaskit/pkg/broadcast"
)

// DefaultSubscriberBuffer is the per-subscriber buffer of the memory transport.
const DefaultSubscriberBuffer = 16

// MemoryHub is an in-process Transport keeping one saaskit MemoryBroadcaster
// per channel. Publishing never blocks: a subscriber whose buffer is full is
// dropped and its stream ends, so the client has to resubscribe.
//
// The hub also remembers when each channel was last used so that idle,
// subscriber-less channels can be pruned by the cleanup job.
//
// Example:
//
//	hub := NewMemoryHub(DefaultSubscriberBuffer)
//	defer hub.Close()
//
//	messages, err := hub.Subscribe(ctx, "shipment.7")
//	if err != nil {
//		return err
//	}
//	_ = hub.Publish(ctx, "shipment.7", payload)
//	msg := <-messages
type MemoryHub struct {
	entries    map[string]*entry
	bufferSize int
	closed     bool
	now        func() time.Time
	mu         sync.Mutex

	// done is cancelled by Close and ends every subscription context.
	done   context.Context
	cancel context.CancelFunc
}

type entry struct {
	broadcaster *fanout.MemoryBroadcaster[[]byte]
	subscribers int
	lastActive  time.Time
}

// NewMemoryHub creates an empty hub. A bufferSize below 1 is raised to 1.
func NewMemoryHub(bufferSize int) *MemoryHub {
	done, cancel := context.WithCancel(context.Background())
	return &MemoryHub{
		entries:    make(map[string]*entry),
		bufferSize: max(bufferSize, 1),
		now:        time.Now,
		done:       done,
		cancel:     cancel,
	}
}

// Publish is a no-op for channels nobody listens to.
func (h *MemoryHub) Publish(ctx context.Context, channel string, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrTransportClosed
	}

	e, ok := h.entries[channel]
	if !ok {
		return nil
	}
	e.lastActive = h.now()

	return e.broadcaster.Broadcast(ctx, fanout.Message[[]byte]{Data: payload})
}

// Subscribe joins channel until ctx ends, the subscriber falls behind or the
// hub is closed. The returned stream is closed in all three cases.
func (h *MemoryHub) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrTransportClosed
	}

	e, ok := h.entries[channel]
	if !ok {
		e = &entry{broadcaster: fanout.NewMemoryBroadcaster[[]byte](h.bufferSize)}
		h.entries[channel] = e
	}
	e.subscribers++
	e.lastActive = h.now()

	subCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(h.done, cancel)
	sub := e.broadcaster.Subscribe(subCtx)

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer h.release(channel)
		defer stop()
		defer cancel()
		defer func() { _ = sub.Close() }()

		messages := sub.Receive(subCtx)
		for {
			select {
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- msg.Data:
				case <-subCtx.Done():
					return
				}
			case <-subCtx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (h *MemoryHub) release(channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e, ok := h.entries[channel]; ok {
		e.subscribers--
		e.lastActive = h.now()
	}
}

// Prune forgets channels that have had no subscribers for at least idle and
// returns how many were removed.
func (h *MemoryHub) Prune(idle time.Duration) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	pruned := 0
	for name, e := range h.entries {
		if e.subscribers == 0 && now.Sub(e.lastActive) >= idle {
			_ = e.broadcaster.Close()
			delete(h.entries, name)
			pruned++
		}
	}
	return pruned
}

// Channels returns the number of channels currently tracked.
func (h *MemoryHub) Channels() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Subscribers returns the number of live subscriptions on channel.
func (h *MemoryHub) Subscribers(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.entries[channel]; ok {
		return e.subscribers
	}
	return 0
}

// Close ends every subscription. It is safe to call more than once.
func (h *MemoryHub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	entries := h.entries
	h.entries = make(map[string]*entry)
	h.mu.Unlock()

	h.cancel()
	for _, e := range entries {
		_ = e.broadcaster.Close()
	}

	return nil
}
