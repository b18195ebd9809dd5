package update_assignment

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Request модель запроса на изменение назначения; nil-поля не меняются
type Request struct {
	ID            int64
	RoomID        *int64
	Start         *time.Time
	End           *time.Time
	Occupancy     *int
	Organization  *string
	Notes         *string
	PriceOverride *int64 // установить явную итоговую цену
	ClearOverride bool   // вернуться к расчетной цене
}

// Response модель ответа с обновленным назначением
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

// toPatch переводит запрос в патч домена
func (r *Request) toPatch() domain.AssignmentPatch {
	patch := domain.AssignmentPatch{
		RoomID:       r.RoomID,
		Start:        r.Start,
		End:          r.End,
		Occupancy:    r.Occupancy,
		Organization: r.Organization,
		Notes:        r.Notes,
	}
	switch {
	case r.PriceOverride != nil:
		p := domain.OverridePrice(*r.PriceOverride)
		patch.Price = &p
	case r.ClearOverride:
		p := domain.ComputedPrice()
		patch.Price = &p
	}
	return patch
}
