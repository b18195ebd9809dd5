package assignments

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// RoomCatalog интерфейс справочника номеров
type RoomCatalog interface {
	ListRooms(ctx context.Context, floor *int) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
