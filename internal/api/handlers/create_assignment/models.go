package create_assignment

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	createAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/create_assignment"
)

// CreateAssignmentRequest HTTP request model
type CreateAssignmentRequest struct {
	RoomID        int64   `json:"roomId"`
	ReservationID int64   `json:"reservationId"`
	Organization  string  `json:"organization"`
	Kind          string  `json:"kind,omitempty"` // "guest" (по умолчанию) | "maintenance"
	StartDate     string  `json:"startDate"`      // "2024-03-01"
	EndDate       string  `json:"endDate"`        // дата выезда
	Occupancy     int     `json:"occupancy"`
	PriceOverride *int64  `json:"priceOverride,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAssignmentRequest) ToUseCaseRequest() (*createAssignment.Request, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createAssignment.Request{
		RoomID:        r.RoomID,
		ReservationID: r.ReservationID,
		Organization:  r.Organization,
		Kind:          r.Kind,
		Start:         start,
		End:           end,
		Occupancy:     r.Occupancy,
		PriceOverride: r.PriceOverride,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAssignment.Response) *AssignmentResponse {
	out := &AssignmentResponse{
		ID:           resp.ID,
		RoomID:       resp.RoomID,
		Organization: resp.Organization,
		Kind:         string(resp.Kind),
		StartDate:    resp.Start.Format(domain.DateFormat),
		EndDate:      resp.End.Format(domain.DateFormat),
		Nights:       resp.Nights,
		Occupancy:    resp.Occupancy,
		PriceMode:    string(resp.PriceMode),
		TotalPrice:   resp.TotalPrice,
		NightlyPrice: resp.NightlyPrice,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.ReservationID > 0 {
		id := resp.ReservationID
		out.ReservationID = &id
	}
	return out
}
