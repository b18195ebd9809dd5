package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	deleteReservation "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/delete_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgNotFound             = "бронь не найдена"
	msgDependentsRemain     = "у брони остались связанные записи, удаление не завершено"
)

type Handler struct {
	useCase DeleteReservationUseCase
	logger  Logger
}

func NewHandler(useCase DeleteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
// Ответ 200 с итогом каскада, даже если часть зависимых записей удалить не удалось
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deleteReservation.Request{ReservationID: reservationID})
	if err != nil {
		switch {
		case errors.Is(err, deleteReservation.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteReservation.ErrDependentsRemain):
			h.logger.Error("DELETE /reservations/{id} - Dependents remain: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgDependentsRemain)

		case errors.Is(err, deleteReservation.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: reservation_id=%d, complete=%t",
		reservationID, result.Complete())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
