package create_assignment

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Request модель запроса на назначение номера
type Request struct {
	RoomID        int64     // ID номера
	ReservationID int64     // ID брони (0 для блока обслуживания)
	Organization  string    // Название организации для отображения
	Kind          string    // guest | maintenance, пусто = guest
	Start         time.Time // Дата заезда
	End           time.Time // Дата выезда (не ночь)
	Occupancy     int       // Количество гостей
	PriceOverride *int64    // Явная итоговая цена; nil = рассчитать
	Notes         *string   // Заметки (опционально)
}

// Response модель ответа с созданным назначением
type Response struct {
	ID            int64
	RoomID        int64
	ReservationID int64
	Organization  string
	Kind          domain.AssignmentKind
	Start         time.Time
	End           time.Time
	Nights        int
	Occupancy     int
	PriceMode     domain.PriceMode
	TotalPrice    int64
	NightlyPrice  int64
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(a *domain.Assignment) *Response {
	return &Response{
		ID:            a.ID,
		RoomID:        a.RoomID,
		ReservationID: a.ReservationID,
		Organization:  a.Organization,
		Kind:          a.Kind,
		Start:         a.Interval.Start,
		End:           a.Interval.End,
		Nights:        a.Nights(),
		Occupancy:     a.Occupancy,
		PriceMode:     a.Price.Mode,
		TotalPrice:    a.TotalPrice(),
		NightlyPrice:  a.NightlyPrice(),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
