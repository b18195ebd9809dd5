package get_availability_grid

import (
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	getAvailabilityGrid "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/get_availability_grid"
)

// CellResponse статус номера на дату
type CellResponse struct {
	Date          string `json:"date"`
	Status        string `json:"status"`
	AssignmentID  *int64 `json:"assignmentId,omitempty"`
	ReservationID *int64 `json:"reservationId,omitempty"`
}

// RowResponse строка сетки
type RowResponse struct {
	RoomID   int64          `json:"roomId"`
	RoomName string         `json:"roomName"`
	Floor    int            `json:"floor"`
	Type     string         `json:"type"`
	Capacity int            `json:"capacity"`
	Cells    []CellResponse `json:"cells"`
}

// SpanResponse объединенная серия ночей одного занимающего
type SpanResponse struct {
	RoomID           int64  `json:"roomId"`
	AssignmentID     int64  `json:"assignmentId"`
	ReservationID    *int64 `json:"reservationId,omitempty"`
	Organization     string `json:"organization"`
	Status           string `json:"status"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Nights           int    `json:"nights"`
	Columns          int    `json:"columns"`
	Occupancy        int    `json:"occupancy"`
	IncludesCheckout bool   `json:"includesCheckout"`
	Label            string `json:"label"`
}

// GridResponse HTTP response model
type GridResponse struct {
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Dates     []string       `json:"dates"`
	Rows      []RowResponse  `json:"rows"`
	Spans     []SpanResponse `json:"spans"`
	Counts    map[string]int `json:"counts"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(startStr, endStr string, floor *int, reservationID *int64) (*getAvailabilityGrid.Request, error) {
	start, err := domain.ParseDate(startStr)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDate(endStr)
	if err != nil {
		return nil, err
	}

	return &getAvailabilityGrid.Request{
		Start:         start,
		End:           end,
		Floor:         floor,
		ReservationID: reservationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilityGrid.Response) *GridResponse {
	grid := resp.Grid
	out := &GridResponse{
		StartDate: grid.Window.Start.Format(domain.DateFormat),
		EndDate:   grid.Window.End.Format(domain.DateFormat),
		Dates:     make([]string, 0, len(grid.Dates)),
		Rows:      make([]RowResponse, 0, len(grid.Rows)),
		Spans:     make([]SpanResponse, 0, len(resp.Spans)),
		Counts:    make(map[string]int, len(resp.Counts)),
	}

	for _, d := range grid.Dates {
		out.Dates = append(out.Dates, d.Format(domain.DateFormat))
	}

	for _, row := range grid.Rows {
		r := RowResponse{
			RoomID:   row.Room.ID,
			RoomName: row.Room.Name,
			Floor:    row.Room.Floor,
			Type:     string(row.Room.Type),
			Capacity: row.Room.Capacity,
			Cells:    make([]CellResponse, 0, len(row.Cells)),
		}
		for _, cell := range row.Cells {
			c := CellResponse{
				Date:   cell.Date.Format(domain.DateFormat),
				Status: string(cell.Status),
			}
			if cell.Assignment != nil {
				id := cell.Assignment.ID
				c.AssignmentID = &id
				if cell.Assignment.ReservationID > 0 {
					resID := cell.Assignment.ReservationID
					c.ReservationID = &resID
				}
			}
			r.Cells = append(r.Cells, c)
		}
		out.Rows = append(out.Rows, r)
	}

	for i := range resp.Spans {
		s := &resp.Spans[i]
		span := SpanResponse{
			RoomID:           s.RoomID,
			AssignmentID:     s.AssignmentID,
			Organization:     s.Organization,
			Status:           string(s.Status),
			StartDate:        s.Start.Format(domain.DateFormat),
			EndDate:          s.End.Format(domain.DateFormat),
			Nights:           s.Nights(),
			Columns:          s.Columns(),
			Occupancy:        s.Occupancy,
			IncludesCheckout: s.IncludesCheckout,
			Label:            s.Label(),
		}
		if s.ReservationID > 0 {
			id := s.ReservationID
			span.ReservationID = &id
		}
		out.Spans = append(out.Spans, span)
	}

	for status, n := range resp.Counts {
		out.Counts[string(status)] = n
	}

	return out
}
