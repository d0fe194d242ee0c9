package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists session snapshots. A nil Session from Get means
// "no session" and is distinct from a transport error.
type Store interface {
	Put(ctx context.Context, session Session, ttl time.Duration) error
	Get(ctx context.Context, uid string) (*Session, error)
	Delete(ctx context.Context, uid string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Redis-backed session store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func sessionKey(uid string) string {
	return "session:" + uid
}

func (s *redisStore) Put(ctx context.Context, session Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal error: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.UID), data, ttl).Err(); err != nil {
		return fmt.Errorf("session store error: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, uid string) (*Session, error) {
	val, err := s.client.Get(ctx, sessionKey(uid)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("session fetch error: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("session unmarshal error: %w", err)
	}
	return &session, nil
}

func (s *redisStore) Delete(ctx context.Context, uid string) error {
	if err := s.client.Del(ctx, sessionKey(uid)).Err(); err != nil {
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}
