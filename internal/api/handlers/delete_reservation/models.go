package delete_reservation

import deleteReservation "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/delete_reservation"

// StepFailureResponse шаг каскада с ошибкой
type StepFailureResponse struct {
	Step  string `json:"step"`
	Error string `json:"error"`
}

// DeleteReservationResponse HTTP response model
type DeleteReservationResponse struct {
	ReservationID int64                 `json:"reservationId"`
	Deleted       map[string]int64      `json:"deleted"`
	Failed        []StepFailureResponse `json:"failed"`
	Complete      bool                  `json:"complete"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteReservation.Response) *DeleteReservationResponse {
	out := &DeleteReservationResponse{
		ReservationID: resp.ReservationID,
		Deleted:       make(map[string]int64, len(resp.Deleted)),
		Failed:        make([]StepFailureResponse, 0, len(resp.Failed)),
		Complete:      resp.Complete(),
	}
	for step, n := range resp.Deleted {
		out.Deleted[string(step)] = n
	}
	for _, f := range resp.Failed {
		out.Failed = append(out.Failed, StepFailureResponse{Step: string(f.Step), Error: f.Error})
	}
	return out
}
