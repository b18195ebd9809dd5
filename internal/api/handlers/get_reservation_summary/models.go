package get_reservation_summary

import (
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments/models"
)

// SummaryLineResponse строка сводки
type SummaryLineResponse struct {
	AssignmentID int64   `json:"assignmentId"`
	RoomID       int64   `json:"roomId"`
	RoomName     string  `json:"roomName,omitempty"`
	Floor        int     `json:"floor,omitempty"`
	Kind         string  `json:"kind"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Nights       int     `json:"nights"`
	Occupancy    int     `json:"occupancy"`
	PriceMode    string  `json:"priceMode"`
	TotalPrice   int64   `json:"totalPrice"`
	NightlyPrice int64   `json:"nightlyPrice"`
	Notes        *string `json:"notes,omitempty"`
}

// ReservationSummaryResponse HTTP response model
type ReservationSummaryResponse struct {
	ReservationID int64                 `json:"reservationId"`
	Organization  string                `json:"organization"`
	ContactName   *string               `json:"contactName,omitempty"`
	Lines         []SummaryLineResponse `json:"lines"`
	RoomCount     int                   `json:"roomCount"`
	RoomNights    int                   `json:"roomNights"`
	TotalPrice    int64                 `json:"totalPrice"`
	CatalogFailed bool                  `json:"catalogFailed"`
}

// FromServiceModel конвертирует сводку сервиса в HTTP response
func FromServiceModel(s *models.ReservationSummary) *ReservationSummaryResponse {
	out := &ReservationSummaryResponse{
		ReservationID: s.ReservationID,
		Organization:  s.Organization,
		ContactName:   s.ContactName,
		Lines:         make([]SummaryLineResponse, 0, len(s.Lines)),
		RoomCount:     s.RoomCount,
		RoomNights:    s.RoomNights,
		TotalPrice:    s.TotalPrice,
		CatalogFailed: s.CatalogFailed,
	}

	for _, l := range s.Lines {
		out.Lines = append(out.Lines, SummaryLineResponse{
			AssignmentID: l.ID,
			RoomID:       l.RoomID,
			RoomName:     l.RoomName,
			Floor:        l.Floor,
			Kind:         l.Kind,
			StartDate:    l.StartDate.Format(domain.DateFormat),
			EndDate:      l.EndDate.Format(domain.DateFormat),
			Nights:       l.Nights,
			Occupancy:    l.Occupancy,
			PriceMode:    l.PriceMode,
			TotalPrice:   l.TotalPrice,
			NightlyPrice: l.NightlyPrice,
			Notes:        l.Notes,
		})
	}

	return out
}
