package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

func TestSummaryKey(t *testing.T) {
	a := SummaryKey("ab", "c")
	b := SummaryKey("a", "bc")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, SummaryKey("ab", "c"))
	assert.Regexp(t, `^summary:[0-9a-f]{64}$`, a)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStoreExpiration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "short", "v", time.Millisecond))
	require.NoError(t, store.Set(ctx, "forever", "v", 0))
	time.Sleep(5 * time.Millisecond)

	_, ok, _ := store.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "forever")
	assert.True(t, ok)

	store.sweep(time.Now())
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreCloseTwice(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

// TestRedisStore runs against a live server when REDIS_TEST_HOST is set.
func TestRedisStore(t *testing.T) {
	host := os.Getenv("REDIS_TEST_HOST")
	if host == "" {
		t.Skip("REDIS_TEST_HOST not set")
	}
	cfg := &config.Config{Redis: config.RedisConfig{Host: host, Port: "6379"}}

	ctx := context.Background()
	store, err := NewRedisStore(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	key := SummaryKey("redis-test", time.Now().String())
	require.NoError(t, store.Set(ctx, key, "payload", time.Minute))
	val, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", val)

	require.NoError(t, store.Delete(ctx, key))
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
