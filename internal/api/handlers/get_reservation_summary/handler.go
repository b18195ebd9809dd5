package get_reservation_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgNotFound             = "бронь не найдена"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("GET /reservations/{id}/summary - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	summary, err := h.service.GetReservationSummary(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/summary - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{id}/summary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("GET /reservations/{id}/summary - Failed to build summary: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id}/summary - Summary built: reservation_id=%d, lines=%d, catalog_failed=%t",
		reservationID, len(summary.Lines), summary.CatalogFailed)
	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(summary))
}
