package delete_reservation

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	DeleteByReservation(ctx context.Context, reservationID int64) (int64, error)
}

// ReservationRepository интерфейс репозитория броней и зависимых записей
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	DeleteMealPlans(ctx context.Context, reservationID int64) (int64, error)
	DeleteVenueBookings(ctx context.Context, reservationID int64) (int64, error)
	DeleteParticipants(ctx context.Context, reservationID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
