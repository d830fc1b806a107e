package hidden

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	db := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = db.Close() })

	return NewRedisStore(db), mr
}

func TestRedisStore_Lifecycle(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	set, err := store.Members(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())

	require.NoError(t, store.Add(ctx, "u2"))
	require.NoError(t, store.Add(ctx, "u1"))
	require.NoError(t, store.Add(ctx, "u1"))

	set, err = store.Members(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, set.IDs())
	assert.True(t, set.Contains("u2"))

	require.NoError(t, store.Clear(ctx))

	set, err = store.Members(ctx)
	require.NoError(t, err)
	assert.Empty(t, set.IDs())
}

func TestRedisStore_NeverExpires(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "u1"))
	mr.FastForward(365 * 24 * time.Hour)

	assert.Equal(t, time.Duration(0), mr.TTL(Key))
	set, err := store.Members(ctx)
	require.NoError(t, err)
	assert.True(t, set.Contains("u1"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	_, err := store.Members(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.Add(context.Background(), "u1"))
	assert.Error(t, store.Clear(context.Background()))
}
