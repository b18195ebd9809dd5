package get_availability_grid

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Request модель запроса сетки доступности
type Request struct {
	Start         time.Time // первый день окна
	End           time.Time // день после последнего дня окна
	Floor         *int      // nil = все этажи
	ReservationID *int64    // бронь, с точки зрения которой строится сетка
}

// Response сетка и объединенные спаны
type Response struct {
	Grid   *availability.Grid
	Spans  []domain.Span
	Counts map[domain.DayStatus]int
}
