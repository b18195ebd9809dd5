package check_assignment

import (
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	checkAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/check_assignment"
)

// CheckAssignmentRequest HTTP request model
type CheckAssignmentRequest struct {
	RoomID              int64  `json:"roomId"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	Occupancy           int    `json:"occupancy"`
	PriceOverride       *int64 `json:"priceOverride,omitempty"`
	ExcludeAssignmentID *int64 `json:"excludeAssignmentId,omitempty"`
}

// ConflictResponse занятое время в номере
type ConflictResponse struct {
	AssignmentID  int64  `json:"assignmentId"`
	ReservationID *int64 `json:"reservationId,omitempty"`
	Organization  string `json:"organization"`
	Kind          string `json:"kind"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

// CheckAssignmentResponse HTTP response model
type CheckAssignmentResponse struct {
	RoomID       int64              `json:"roomId"`
	RoomName     string             `json:"roomName"`
	Capacity     int                `json:"capacity"`
	StartDate    string             `json:"startDate"`
	EndDate      string             `json:"endDate"`
	Nights       int                `json:"nights"`
	Occupancy    int                `json:"occupancy"`
	OverCapacity bool               `json:"overCapacity"`
	Available    bool               `json:"available"`
	Conflicts    []ConflictResponse `json:"conflicts"`
	PriceMode    string             `json:"priceMode"`
	TotalPrice   int64              `json:"totalPrice"`
	NightlyPrice int64              `json:"nightlyPrice"`
	Surcharge    int64              `json:"surcharge"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAssignmentRequest) ToUseCaseRequest() (*checkAssignment.Request, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &checkAssignment.Request{
		RoomID:              r.RoomID,
		Start:               start,
		End:                 end,
		Occupancy:           r.Occupancy,
		PriceOverride:       r.PriceOverride,
		ExcludeAssignmentID: r.ExcludeAssignmentID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAssignment.Response) *CheckAssignmentResponse {
	out := &CheckAssignmentResponse{
		RoomID:       resp.RoomID,
		RoomName:     resp.RoomName,
		Capacity:     resp.Capacity,
		StartDate:    resp.Start.Format(domain.DateFormat),
		EndDate:      resp.End.Format(domain.DateFormat),
		Nights:       resp.Nights,
		Occupancy:    resp.Occupancy,
		OverCapacity: resp.OverCapacity,
		Available:    resp.Available,
		Conflicts:    make([]ConflictResponse, 0, len(resp.Conflicts)),
		PriceMode:    string(resp.PriceMode),
		TotalPrice:   resp.TotalPrice,
		NightlyPrice: resp.NightlyPrice,
		Surcharge:    resp.Surcharge,
	}

	for _, c := range resp.Conflicts {
		conflict := ConflictResponse{
			AssignmentID: c.AssignmentID,
			Organization: c.Organization,
			Kind:         string(c.Kind),
			StartDate:    c.Start.Format(domain.DateFormat),
			EndDate:      c.End.Format(domain.DateFormat),
		}
		if c.ReservationID > 0 {
			id := c.ReservationID
			conflict.ReservationID = &id
		}
		out.Conflicts = append(out.Conflicts, conflict)
	}

	return out
}
