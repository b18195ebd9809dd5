package update_assignment

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	LockRoom(ctx context.Context, roomID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	FetchAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
}

// RoomCatalog интерфейс справочника номеров
type RoomCatalog interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// PriceCalculator интерфейс калькулятора цены
type PriceCalculator interface {
	Resolve(p domain.Price, room domain.Room, interval domain.DateInterval, occupancy int) (domain.Price, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
