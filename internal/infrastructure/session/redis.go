package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ims:session:"

// RedisStore keeps sessions in Redis. Expiry rides on the key TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by the given Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Save stores the session under its token with the given TTL
func (s *RedisStore) Save(ctx context.Context, session *Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, redisKeyPrefix+session.Token, data, ttl).Err()
}

// Get loads a session by token
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

// Ping verifies the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ Store = (*RedisStore)(nil)
