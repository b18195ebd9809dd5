package delete_reservation

import "github.com/m04kA/SMC-RoomAssignmentService/internal/domain"

// Request модель запроса на удаление брони
type Request struct {
	ReservationID int64
}

// StepFailure шаг каскада, завершившийся ошибкой
type StepFailure struct {
	Step  domain.ReservationStep
	Error string
}

// Response итог каскадного удаления
type Response struct {
	ReservationID int64
	Deleted       map[domain.ReservationStep]int64
	Failed        []StepFailure
}

// Complete сообщает, что все зависимые записи удалены без ошибок
func (r *Response) Complete() bool {
	return len(r.Failed) == 0
}
