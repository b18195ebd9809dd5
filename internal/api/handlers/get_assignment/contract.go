package get_assignment

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments/models"
)

type AssignmentService interface {
	GetByID(ctx context.Context, id int64) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
