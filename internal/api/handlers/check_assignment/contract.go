package check_assignment

import (
	"context"

	checkAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/check_assignment"
)

type CheckAssignmentUseCase interface {
	Execute(ctx context.Context, req *checkAssignment.Request) (*checkAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
