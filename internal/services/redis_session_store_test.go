package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"wirralclean/internal/models"
)

// newTestRedisStore connects to REDIS_TEST_ADDR, skipping when it is unset.
func newTestRedisStore(t *testing.T) *RedisSessionStore {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	store := NewRedisSessionStore(client, time.Minute)
	if err := store.Ping(context.Background()); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	return store
}

func TestRedisSessionStore(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	visitorID := uuid.NewString()
	t.Cleanup(func() { store.Delete(ctx, visitorID) })

	session, err := store.Get(ctx, visitorID)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if session.Wheel.Phase != models.WheelIdle {
		t.Errorf("Expected a fresh session, but got %+v", session)
	}

	_, err = store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		vs.Calculator.Rooms = append(vs.Calculator.Rooms, "stairs")
		return nil
	})
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	boom := errors.New("boom")
	_, err = store.Update(ctx, visitorID, func(vs *models.VisitorSession) error {
		vs.Calculator.Rooms = nil
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, but got %v", err)
	}

	session, _ = store.Get(ctx, visitorID)
	if len(session.Calculator.Rooms) != 1 || session.Calculator.Rooms[0] != "stairs" {
		t.Errorf("Expected [stairs], but got %v", session.Calculator.Rooms)
	}

	ttl, err := store.client.TTL(ctx, sessionKey(visitorID)).Result()
	if err != nil || ttl <= 0 {
		t.Errorf("Expected the session key to expire, but got ttl %v (%v)", ttl, err)
	}
}
