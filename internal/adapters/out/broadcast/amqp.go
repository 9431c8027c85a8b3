package broadcast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// DefaultAMQPExchange is the topic exchange used when none is configured.
const DefaultAMQPExchange = "logistics.broadcast"

// AMQPTransport publishes envelopes to a topic exchange with the channel name
// as routing key. Each subscription gets its own exclusive auto-delete queue.
type AMQPTransport struct {
	conn      *amqp091.Connection
	publishCh *amqp091.Channel
	exchange  string
	mu        sync.Mutex
}

// DialAMQP connects to the broker and declares the durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPTransport, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &AMQPTransport{conn: conn, publishCh: ch, exchange: exchange}, nil
}

func (t *AMQPTransport) Publish(ctx context.Context, channel string, payload []byte) error {
	// amqp091 channels are not safe for concurrent publishing.
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.publishCh.PublishWithContext(ctx,
		t.exchange, // exchange
		channel,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		},
	)
}

// Subscribe binds a fresh exclusive queue to channel. The queue disappears with
// its consumer when ctx ends.
func (t *AMQPTransport) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	ch, err := t.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	queue, err := ch.QueueDeclare(
		"",    // name, generated by the broker
		false, // durable
		true,  // auto-deleted
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare subscriber queue: %w", err)
	}

	if err = ch.QueueBind(queue.Name, channel, t.exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to bind subscriber queue to %s: %w", channel, err)
	}

	deliveries, err := ch.Consume(
		queue.Name, // queue name
		"",         // consumer name
		true,       // auto-ack
		true,       // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to start consuming %s: %w", channel, err)
	}

	out := make(chan []byte, DefaultSubscriberBuffer)
	go func() {
		defer close(out)
		defer func() { _ = ch.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case out <- msg.Body:
				default:
				}
			}
		}
	}()

	return out, nil
}

// Close closes the publishing channel and the connection.
func (t *AMQPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.publishCh.Close(); err != nil && !t.conn.IsClosed() {
		return fmt.Errorf("error closing channel: %w", err)
	}
	if t.conn.IsClosed() {
		return nil
	}
	if err := t.conn.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}
