package get_assignment

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments/models"
)

// AssignmentResponse HTTP response model
type AssignmentResponse struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"roomId"`
	ReservationID *int64  `json:"reservationId,omitempty"`
	Organization  string  `json:"organization"`
	Kind          string  `json:"kind"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Nights        int     `json:"nights"`
	Occupancy     int     `json:"occupancy"`
	PriceMode     string  `json:"priceMode"`
	TotalPrice    int64   `json:"totalPrice"`
	NightlyPrice  int64   `json:"nightlyPrice"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(a *models.AssignmentResponse) *AssignmentResponse {
	return &AssignmentResponse{
		ID:            a.ID,
		RoomID:        a.RoomID,
		ReservationID: a.ReservationID,
		Organization:  a.Organization,
		Kind:          a.Kind,
		StartDate:     a.StartDate.Format(domain.DateFormat),
		EndDate:       a.EndDate.Format(domain.DateFormat),
		Nights:        a.Nights,
		Occupancy:     a.Occupancy,
		PriceMode:     a.PriceMode,
		TotalPrice:    a.TotalPrice,
		NightlyPrice:  a.NightlyPrice,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}
