package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/ptr"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Cache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewCache(client, time.Minute)
}

func sampleRooms() []domain.Room {
	return []domain.Room{
		{ID: 301, Name: "301", Floor: 3, Type: domain.RoomTypeTwin, Capacity: 2, BasePrice: 50000},
		{ID: 302, Name: "302", Floor: 3, Type: domain.RoomTypeJapanese, Capacity: 4, BasePrice: 80000},
	}
}

func TestCache_ListRoundTrip(t *testing.T) {
	mr, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.GetList(ctx, ptr.Ptr(3))
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.SetList(ctx, ptr.Ptr(3), sampleRooms()))
	assert.True(t, mr.Exists("room_catalog:list:floor:3"))
	assert.False(t, mr.Exists("room_catalog:list:all"))

	got, err := cache.GetList(ctx, ptr.Ptr(3))
	require.NoError(t, err)
	assert.Equal(t, sampleRooms(), got)
}

func TestCache_Expires(t *testing.T) {
	mr, cache := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.SetRoom(ctx, sampleRooms()[0]))

	room, err := cache.GetRoom(ctx, 301)
	require.NoError(t, err)
	assert.Equal(t, "301", room.Name)

	mr.FastForward(2 * time.Minute)

	_, err = cache.GetRoom(ctx, 301)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_CorruptedEntry(t *testing.T) {
	mr, cache := setupTestRedis(t)

	require.NoError(t, mr.Set("room_catalog:room:301", `{"id":301,"type":"penthouse","capacity":2}`))
	_, err := cache.GetRoom(context.Background(), 301)
	assert.ErrorIs(t, err, ErrCache)

	require.NoError(t, mr.Set("room_catalog:list:all", `not json`))
	_, err = cache.GetList(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_RedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCache(client, time.Minute)

	_, err := cache.GetList(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCache)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
