package broadcast

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisChannelPrefix = "logistics:broadcast:"

var (
	ErrFailedToParseRedisURL = errors.New("failed to parse redis connection url")
	ErrRedisNotReady         = errors.New("redis did not become ready")
)

// ConnectRedis opens a client and pings it until it answers or attempts run out.
func ConnectRedis(ctx context.Context, url string, attempts int, interval time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	for range max(attempts, 1) {
		client := redis.NewClient(opts)
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(interval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, err)
}

// RedisTransport maps each broadcast channel onto a Redis pub/sub channel, so
// every application node sees every event.
type RedisTransport struct {
	client *redis.Client
}

// NewRedisTransport takes ownership of client; Close closes it.
func NewRedisTransport(client *redis.Client) *RedisTransport {
	return &RedisTransport{client: client}
}

func (t *RedisTransport) Publish(ctx context.Context, channel string, payload []byte) error {
	return t.client.Publish(ctx, redisChannelPrefix+channel, payload).Err()
}

// Subscribe forwards Redis pub/sub messages until ctx ends.
func (t *RedisTransport) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	pubsub := t.client.Subscribe(ctx, redisChannelPrefix+channel)
	// Receive waits for the subscription confirmation.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan []byte, DefaultSubscriberBuffer)
	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				default:
				}
			}
		}
	}()

	return out, nil
}

func (t *RedisTransport) Close() error {
	return t.client.Close()
}
