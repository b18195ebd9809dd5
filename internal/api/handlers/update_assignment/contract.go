package update_assignment

import (
	"context"

	updateAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/update_assignment"
)

type UpdateAssignmentUseCase interface {
	Execute(ctx context.Context, req *updateAssignment.Request) (*updateAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
