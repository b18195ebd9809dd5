package update_assignment

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	updateAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/update_assignment"
)

// UpdateAssignmentRequest HTTP request model; отсутствующие поля не меняются
type UpdateAssignmentRequest struct {
	RoomID        *int64  `json:"roomId,omitempty"`
	StartDate     *string `json:"startDate,omitempty"`
	EndDate       *string `json:"endDate,omitempty"`
	Occupancy     *int    `json:"occupancy,omitempty"`
	Organization  *string `json:"organization,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PriceOverride *int64  `json:"priceOverride,omitempty"`
	ClearOverride bool    `json:"clearOverride,omitempty"`
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
func (r *UpdateAssignmentRequest) ToUseCaseRequest(assignmentID int64) (*updateAssignment.Request, error) {
	req := &updateAssignment.Request{
		ID:            assignmentID,
		RoomID:        r.RoomID,
		Occupancy:     r.Occupancy,
		Organization:  r.Organization,
		Notes:         r.Notes,
		PriceOverride: r.PriceOverride,
		ClearOverride: r.ClearOverride,
	}

	if r.StartDate != nil {
		start, err := domain.ParseDate(*r.StartDate)
		if err != nil {
			return nil, err
		}
		req.Start = &start
	}

	if r.EndDate != nil {
		end, err := domain.ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}
		req.End = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAssignment.Response) *AssignmentResponse {
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
