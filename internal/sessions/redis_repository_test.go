package sessions

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRedisRepo(t *testing.T) *RedisRepository {
	t.Helper()
	srv, err := mr.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(srv.Close)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return NewRedisRepository(client, "session:")
}

func TestRedisRepositoryRoundTrip(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	s := &Session{
		ID:        "abc123",
		UserID:    "user-1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	assert.NoError(t, repo.Create(ctx, s))

	got, err := repo.Get(ctx, "abc123")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "user-1", got.UserID)
	}

	assert.NoError(t, repo.Delete(ctx, "abc123"))
	got2, err := repo.Get(ctx, "abc123")
	assert.NoError(t, err)
	assert.Nil(t, got2)
}

func TestRedisRepositoryUnknownID(t *testing.T) {
	repo := newTestRedisRepo(t)
	got, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRepositoryExpired(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	s := &Session{
		ID:        "soon-gone",
		UserID:    "user-1",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	// Create clamps the TTL to a minimal positive value; the stored record is
	// still expired from the application's point of view.
	assert.NoError(t, repo.Create(ctx, s))
	got, err := repo.Get(ctx, "soon-gone")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
