package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

const keyPrefix = "room_catalog:"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кеше
	ErrCacheMiss = errors.New("rooms.cache: cache miss")

	// ErrCache возвращается при ошибках Redis или повреждённых данных
	ErrCache = errors.New("rooms.cache: redis error")
)

// cachedRoom представление номера в кеше
type cachedRoom struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Floor     int    `json:"floor"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	BasePrice int64  `json:"base_price"`
}

// Cache кеш справочника номеров в Redis
// Кешируется только каталог; сетка доступности всегда строится заново
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кеш каталога
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetList возвращает закешированный список номеров (всех или этажа)
func (c *Cache) GetList(ctx context.Context, floor *int) ([]domain.Room, error) {
	raw, err := c.get(ctx, listKey(floor))
	if err != nil {
		return nil, err
	}

	var cached []cachedRoom
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: decode list: %v", ErrCache, err)
	}

	rooms := make([]domain.Room, 0, len(cached))
	for _, r := range cached {
		room, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// SetList кладет список номеров в кеш
func (c *Cache) SetList(ctx context.Context, floor *int, rooms []domain.Room) error {
	cached := make([]cachedRoom, 0, len(rooms))
	for _, r := range rooms {
		cached = append(cached, fromDomain(r))
	}
	return c.set(ctx, listKey(floor), cached)
}

// GetRoom возвращает закешированный номер
func (c *Cache) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	raw, err := c.get(ctx, roomKey(roomID))
	if err != nil {
		return nil, err
	}

	var cached cachedRoom
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: decode room: %v", ErrCache, err)
	}

	room, err := cached.toDomain()
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// SetRoom кладет номер в кеш
func (c *Cache) SetRoom(ctx context.Context, room domain.Room) error {
	return c.set(ctx, roomKey(room.ID), fromDomain(room))
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrCache, key, err)
	}
	return raw, nil
}

func (c *Cache) set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCache, key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, key, err)
	}
	return nil
}

func listKey(floor *int) string {
	if floor == nil {
		return keyPrefix + "list:all"
	}
	return keyPrefix + "list:floor:" + strconv.Itoa(*floor)
}

func roomKey(roomID int64) string {
	return keyPrefix + "room:" + strconv.FormatInt(roomID, 10)
}

func fromDomain(r domain.Room) cachedRoom {
	return cachedRoom{
		ID:        r.ID,
		Name:      r.Name,
		Floor:     r.Floor,
		Type:      string(r.Type),
		Capacity:  r.Capacity,
		BasePrice: r.BasePrice,
	}
}

func (r cachedRoom) toDomain() (domain.Room, error) {
	roomType, err := domain.ParseRoomType(r.Type)
	if err != nil {
		return domain.Room{}, fmt.Errorf("%w: %v", ErrCache, err)
	}
	return domain.Room{
		ID:        r.ID,
		Name:      r.Name,
		Floor:     r.Floor,
		Type:      roomType,
		Capacity:  r.Capacity,
		BasePrice: r.BasePrice,
	}, nil
}
