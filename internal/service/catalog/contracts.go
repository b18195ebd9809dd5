package catalog

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// RoomCatalogClient интерфейс клиента каталога номеров
type RoomCatalogClient interface {
	ListRooms(ctx context.Context, floor *int) ([]domain.Room, error)
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// RoomCache интерфейс кеша каталога
type RoomCache interface {
	GetList(ctx context.Context, floor *int) ([]domain.Room, error)
	SetList(ctx context.Context, floor *int, rooms []domain.Room) error
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	SetRoom(ctx context.Context, room domain.Room) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
