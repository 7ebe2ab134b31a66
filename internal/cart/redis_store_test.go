package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client, time.Hour)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	lines := []domain.CartLine{
		{Product: domain.Product{ID: "a", Name: "Bouillie mil", Price: 500, Stock: 10}, Quantity: 2},
		{Product: domain.Product{ID: "b", Name: "Bouillie riz", Price: 1000, Stock: 5}, Quantity: 1},
	}

	require.NoError(t, store.Save(ctx, "s1", lines))

	// Simulates a page reload: same session id, fresh load.
	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	byID := map[string]int64{}
	for _, l := range loaded {
		byID[l.Product.ID] = l.Quantity
	}
	assert.Equal(t, int64(2), byID["a"])
	assert.Equal(t, int64(1), byID["b"])
}

func TestRedisStore_MissingKeyLoadsEmpty(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	lines, err := store.Load(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisStore_CorruptDataLoadsEmpty(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(cartKey("s1"), "{not valid json")

	lines, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	lines := []domain.CartLine{
		{Product: domain.Product{ID: "a", Price: 500}, Quantity: 1},
	}
	require.NoError(t, store.Save(ctx, "s1", lines))
	require.NoError(t, store.Delete(ctx, "s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
