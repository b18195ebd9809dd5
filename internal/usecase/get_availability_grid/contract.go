package get_availability_grid

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
	ListRooms(ctx context.Context, floor *int) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
