package get_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

type CatalogService interface {
	ListRooms(ctx context.Context, floor *int) ([]domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
