// Package redis provides the Redis-backed notification transport.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher delivers notification payloads over Redis pub/sub. Client
// frontends subscribe to their session's channel to receive terminate
// notices.
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a publisher for the given address.
func NewPublisher(addr string) *Publisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Publisher{client: client}
}

// NewPublisherWithURL creates a publisher from a Redis URL.
func NewPublisherWithURL(url string) (*Publisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &Publisher{client: redis.NewClient(opts)}, nil
}

// Publish sends the payload to every subscriber of the channel.
func (p *Publisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return p.client.Publish(ctx, channel, payload).Err()
}

// Ping verifies connectivity.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (p *Publisher) Close() error {
	return p.client.Close()
}
