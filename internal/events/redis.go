package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Channel is the Redis pub/sub channel carrying question events
const Channel = "trivia:questions"

// RedisPublisher publishes question events over Redis pub/sub so every API
// instance can relay them to its own WebSocket clients
type RedisPublisher struct {
	redis *redis.Client
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(redis *redis.Client) *RedisPublisher {
	return &RedisPublisher{redis: redis}
}

// Publish publishes a question event to all subscribers
func (p *RedisPublisher) Publish(ctx context.Context, event domain.QuestionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.redis.Publish(ctx, Channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscribe subscribes to question events
func (p *RedisPublisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.redis.Subscribe(ctx, Channel)
}

// Relay forwards every message received on the subscription to deliver
// until ctx is done or the subscription is closed
func Relay(ctx context.Context, sub *redis.PubSub, deliver func([]byte)) {
	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			deliver([]byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}
