package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	roomsCache "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/cache/rooms"
	catalogClient "github.com/m04kA/SMC-RoomAssignmentService/internal/integrations/roomcatalog"
)

// Service справочник номеров: каталог с необязательным кешем
type Service struct {
	client RoomCatalogClient
	cache  RoomCache // nil, если кеш выключен
	logger Logger
}

// NewService создает сервис каталога; cache может быть nil
func NewService(client RoomCatalogClient, cache RoomCache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// ListRooms возвращает номера (всех или одного этажа), отсортированные по этажу и имени
// Ошибки кеша не фатальны: при них данные берутся из каталога
func (s *Service) ListRooms(ctx context.Context, floor *int) ([]domain.Room, error) {
	if floor != nil && *floor < 0 {
		return nil, fmt.Errorf("%w: floor must not be negative", ErrInvalidInput)
	}

	if s.cache != nil {
		rooms, err := s.cache.GetList(ctx, floor)
		if err == nil {
			return rooms, nil
		}
		if !errors.Is(err, roomsCache.ErrCacheMiss) {
			s.logger.Warn("ListRooms: cache read failed, falling back to catalog: %v", err)
		}
	}

	rooms, err := s.client.ListRooms(ctx, floor)
	if err != nil {
		s.logger.Error("ListRooms: catalog request failed: %v", err)
		return nil, mapClientError(err)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].Floor != rooms[j].Floor {
			return rooms[i].Floor < rooms[j].Floor
		}
		return rooms[i].Name < rooms[j].Name
	})

	if s.cache != nil {
		if err := s.cache.SetList(ctx, floor, rooms); err != nil {
			s.logger.Warn("ListRooms: cache write failed: %v", err)
		}
	}

	s.logger.Info("ListRooms: fetched %d rooms from catalog", len(rooms))
	return rooms, nil
}

// GetRoom возвращает номер по ID
func (s *Service) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if s.cache != nil {
		room, err := s.cache.GetRoom(ctx, roomID)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, roomsCache.ErrCacheMiss) {
			s.logger.Warn("GetRoom: cache read failed for room id=%d: %v", roomID, err)
		}
	}

	room, err := s.client.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: catalog request failed for room id=%d: %v", roomID, err)
		return nil, mapClientError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetRoom(ctx, *room); err != nil {
			s.logger.Warn("GetRoom: cache write failed for room id=%d: %v", roomID, err)
		}
	}

	return room, nil
}

func mapClientError(err error) error {
	if errors.Is(err, catalogClient.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
