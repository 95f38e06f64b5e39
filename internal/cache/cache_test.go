package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	var out payload
	found, err := GetJSON(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "spot", Count: 3}, time.Minute))

	found, err = GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "spot", Count: 3}, out)
}

func TestAside(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "fetched", Count: calls}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "spots:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache.
	var second payload
	require.NoError(t, Aside(ctx, "spots:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestAsideFetchError(t *testing.T) {
	withTestRedis(t)

	boom := errors.New("db down")
	var out payload
	err := Aside(context.Background(), "spots:2", &out, time.Minute, func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestAsideNilClient(t *testing.T) {
	SetClient(nil)

	calls := 0
	var out payload
	require.NoError(t, Aside(context.Background(), "spots:3", &out, time.Minute, func() error {
		calls++
		out = payload{Name: "direct"}
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "direct", out.Name)
}

func TestInvalidate(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, SpotKey(1), payload{Name: "a"}, time.Minute))
	Invalidate(ctx, SpotKey(1))

	var out payload
	found, err := GetJSON(ctx, SpotKey(1), &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateSpotLists(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, SpotsListKey(1, 20), payload{Name: "p1"}, time.Minute))
	require.NoError(t, SetJSON(ctx, SpotsListKey(2, 20), payload{Name: "p2"}, time.Minute))
	require.NoError(t, SetJSON(ctx, SpotKey(7), payload{Name: "keep"}, time.Minute))

	InvalidateSpotLists(ctx)

	var out payload
	found, _ := GetJSON(ctx, SpotsListKey(1, 20), &out)
	assert.False(t, found)
	found, _ = GetJSON(ctx, SpotsListKey(2, 20), &out)
	assert.False(t, found)
	found, _ = GetJSON(ctx, SpotKey(7), &out)
	assert.True(t, found)
}
