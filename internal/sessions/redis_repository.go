package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository using Redis as the backing store.
// Sessions are stored as JSON under "<prefix><id>" with TTL = expiresAt - now.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository creates a Redis-based session repository. Prefix may be
// empty.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(id string) string { return r.prefix + id }

func (r *RedisRepository) Create(ctx context.Context, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	exp := time.Until(s.ExpiresAt)
	if exp <= 0 {
		// keep a minimal TTL so Redis never stores an already expired session
		exp = time.Second
	}
	return r.client.Set(ctx, r.key(s.ID), b, exp).Err()
}

func (r *RedisRepository) Get(ctx context.Context, id string) (*Session, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if time.Now().UTC().After(s.ExpiresAt) {
		_ = r.client.Del(ctx, r.key(id)).Err()
		return nil, nil
	}
	return &s, nil
}

func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}
