package check_assignment

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	FetchAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]domain.Assignment, error)
}

// RoomCatalog интерфейс справочника номеров
type RoomCatalog interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// PriceCalculator интерфейс калькулятора цены
type PriceCalculator interface {
	Resolve(p domain.Price, room domain.Room, interval domain.DateInterval, occupancy int) (domain.Price, error)
	Surcharge(nights, occupancy, capacity int) int64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
