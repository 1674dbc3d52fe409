package events

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestRelayStopsWhenContextDone(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { client.Close() })

	sub := client.Subscribe(context.Background(), Channel)
	t.Cleanup(func() { sub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Relay(ctx, sub, func([]byte) { t.Errorf("unexpected delivery") })
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Relay did not return after cancel")
	}
}

func TestPublishFailsWithoutServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	err := NewRedisPublisher(client).Publish(context.Background(), domain.QuestionEvent{
		Type:       domain.EventQuestionDeleted,
		QuestionID: 3,
	})
	if err == nil {
		t.Fatalf("expected publish to fail")
	}
}
