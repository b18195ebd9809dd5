package models

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// AssignmentResponse назначение номера для сводки и карточки назначения
type AssignmentResponse struct {
	ID            int64
	RoomID        int64
	ReservationID *int64 // nil для блоков обслуживания
	Organization  string
	Kind          string
	StartDate     time.Time
	EndDate       time.Time // дата выезда
	Nights        int
	Occupancy     int
	PriceMode     string
	TotalPrice    int64
	NightlyPrice  int64
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SummaryLine строка сводки брони: назначение и данные номера из каталога
type SummaryLine struct {
	AssignmentResponse
	RoomName string // пусто, если каталог недоступен
	Floor    int
}

// ReservationSummary сводка по брони для менеджера
type ReservationSummary struct {
	ReservationID int64
	Organization  string
	ContactName   *string
	Lines         []SummaryLine
	RoomCount     int   // разных номеров
	RoomNights    int   // сумма ночей по всем назначениям
	TotalPrice    int64 // сумма итоговых цен
	CatalogFailed bool  // названия номеров не удалось получить
}

// FromDomainAssignment конвертирует доменное назначение в ответ
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:           a.ID,
		RoomID:       a.RoomID,
		Organization: a.Organization,
		Kind:         string(a.Kind),
		StartDate:    a.Interval.Start,
		EndDate:      a.Interval.End,
		Nights:       a.Nights(),
		Occupancy:    a.Occupancy,
		PriceMode:    string(a.Price.Mode),
		TotalPrice:   a.TotalPrice(),
		NightlyPrice: a.NightlyPrice(),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.ReservationID > 0 {
		id := a.ReservationID
		resp.ReservationID = &id
	}
	return resp
}

// BuildSummary собирает сводку по брони; rooms может быть пустым
func BuildSummary(res *domain.Reservation, assignments []domain.Assignment, rooms map[int64]domain.Room) *ReservationSummary {
	summary := &ReservationSummary{
		ReservationID: res.ID,
		Organization:  res.Organization,
		ContactName:   res.ContactName,
		Lines:         make([]SummaryLine, 0, len(assignments)),
	}

	seen := make(map[int64]struct{}, len(assignments))
	for i := range assignments {
		a := &assignments[i]

		line := SummaryLine{AssignmentResponse: *FromDomainAssignment(a)}
		if room, ok := rooms[a.RoomID]; ok {
			line.RoomName = room.Name
			line.Floor = room.Floor
		}
		summary.Lines = append(summary.Lines, line)

		seen[a.RoomID] = struct{}{}
		summary.RoomNights += a.Nights()
		summary.TotalPrice += a.TotalPrice()
	}
	summary.RoomCount = len(seen)

	return summary
}
