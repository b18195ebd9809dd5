package get_reservation_summary

import (
	"context"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments/models"
)

type AssignmentService interface {
	GetReservationSummary(ctx context.Context, reservationID int64) (*models.ReservationSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
