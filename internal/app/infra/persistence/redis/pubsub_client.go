package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSub broadcasts relay outcomes on a Redis channel so other services
// (shipment tracking, reporting) can react without polling the database.
type PubSub struct {
	client *redis.Client
}

// NewPubSub connects to Redis and verifies the connection.
func NewPubSub(addr, password string, db int) (*PubSub, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &PubSub{client: client}, nil
}

// RelayNotification is the message published after a submission is accepted.
type RelayNotification struct {
	OrderNumber            string `json:"order_number"`
	SquarespaceOrderNumber string `json:"squarespace_order_number"`
	ShipStatus             string `json:"ship_status"`
	Timestamp              int64  `json:"timestamp"`
}

// PublishRelayComplete publishes a relay outcome to the given channel.
func (p *PubSub) PublishRelayComplete(ctx context.Context, channel string, notification *RelayNotification) error {
	msgJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Subscribe subscribes to a channel. Used by tests and downstream consumers.
func (p *PubSub) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return p.client.Subscribe(ctx, channel)
}

// Close closes the Redis connection.
func (p *PubSub) Close() error {
	return p.client.Close()
}
