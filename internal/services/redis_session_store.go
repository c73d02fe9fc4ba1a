package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"wirralclean/internal/models"
)

const (
	redisSessionPrefix = "site:visitor:"
	redisUpdateRetries = 3
)

// ErrSessionConflict is returned when a session kept changing under concurrent updates.
var ErrSessionConflict = errors.New("session updated concurrently")

// RedisSessionStore shares visitor sessions between instances.
// Keys expire after the TTL, so state stays as short-lived as the in-memory store.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisSessionStore wraps an existing client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl, now: time.Now}
}

// Ping checks connectivity at startup.
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(visitorID string) string {
	return redisSessionPrefix + visitorID
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisSessionStore) read(ctx context.Context, cmd stringGetter, key string) (models.VisitorSession, error) {
	raw, err := cmd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewVisitorSession(), nil
	}
	if err != nil {
		return models.VisitorSession{}, fmt.Errorf("read session: %w", err)
	}
	var session models.VisitorSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.VisitorSession{}, fmt.Errorf("decode session: %w", err)
	}
	return cloneSession(session), nil
}

// Get returns the visitor's session, or a fresh one when none is stored.
func (s *RedisSessionStore) Get(ctx context.Context, visitorID string) (models.VisitorSession, error) {
	return s.read(ctx, s.client, sessionKey(visitorID))
}

// Update runs fn inside an optimistic WATCH transaction and refreshes the TTL.
func (s *RedisSessionStore) Update(ctx context.Context, visitorID string, fn func(*models.VisitorSession) error) (models.VisitorSession, error) {
	key := sessionKey(visitorID)
	var result models.VisitorSession

	txf := func(tx *redis.Tx) error {
		session, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}
		result = cloneSession(session)
		if err := fn(&session); err != nil {
			return err
		}
		session.LastActivity = s.now()
		raw, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)
			return nil
		})
		if err == nil {
			result = session
		}
		return err
	}

	for i := 0; i < redisUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return result, err
	}
	return result, ErrSessionConflict
}

// Delete removes a visitor's session.
func (s *RedisSessionStore) Delete(ctx context.Context, visitorID string) error {
	if err := s.client.Del(ctx, sessionKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
