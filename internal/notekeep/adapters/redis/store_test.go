package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "notekeep/internal/notekeep/adapters/redis"
	"notekeep/internal/notekeep/config"
	"notekeep/internal/notekeep/ports/kv"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    1 * time.Second,
		WriteTimeout:   1 * time.Second,
		PoolSize:       5,
		MinIdle:        1,
	}

	return s, cfg
}

func TestNewStore_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	store, err := redisadapter.NewStore(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, store)

	var _ kv.Store = store

	assert.NoError(t, store.Close(), "should close without errors")
}

func TestNewStore_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	store, err := redisadapter.NewStore(ctx, cfg)

	assert.Error(t, err, "Expected error when Redis connection fails")
	assert.Nil(t, store, "Store should be nil when connection fails")
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestStore_GetSet(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	store, err := redisadapter.NewStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, kv.ErrKeyMissing, "missing key should map to the sentinel error")

	require.NoError(t, store.Set(ctx, "user:alice", `{"id":"alice"}`))

	value, err := store.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"alice"}`, value)
}

func TestStore_SetNX(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	store, err := redisadapter.NewStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	stored, err := store.SetNX(ctx, "user:alice", "first")
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = store.SetNX(ctx, "user:alice", "second")
	require.NoError(t, err)
	assert.False(t, stored, "second SetNX on the same key must not store")

	value, err := store.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.Equal(t, "first", value, "existing value must survive a failed SetNX")
}

func TestStore_ExistsAndDelete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	store, err := redisadapter.NewStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exists, err := store.Exists(ctx, "note:1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(ctx, "note:1", "body"))

	exists, err = store.Exists(ctx, "note:1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "note:1"))

	exists, err = store.Exists(ctx, "note:1")
	require.NoError(t, err)
	assert.False(t, exists)

	// Удаление отсутствующего ключа не является ошибкой.
	assert.NoError(t, store.Delete(ctx, "note:1"))
}

func TestStore_SetOperations(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	store, err := redisadapter.NewStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.SAdd(ctx, "index:note", "a", "b"))
	require.NoError(t, store.SAdd(ctx, "index:note", "b"))

	members, err := store.SMembers(ctx, "index:note")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members, "set must deduplicate members")

	require.NoError(t, store.SRem(ctx, "index:note", "a"))

	members, err = store.SMembers(ctx, "index:note")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b"}, members)
}
