package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

// SessionStore keeps the identified customer record per session.
// A missing or corrupt entry reads as anonymous.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Customer, error)
	Save(ctx context.Context, sessionID string, customer *domain.Customer) error
	Delete(ctx context.Context, sessionID string) error
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisSessionStore) Load(ctx context.Context, sessionID string) (*domain.Customer, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var customer domain.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		// Corrupt identity is discarded silently.
		return nil, nil
	}

	return &customer, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, sessionID string, customer *domain.Customer) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("marshal customer failed: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("client:%s", sessionID)
}
