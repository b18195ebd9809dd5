package get_availability_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	getAvailabilityGrid "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/get_availability_grid"
)

const (
	msgMissingDates         = "параметры start и end обязательны"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFloor         = "некорректный номер этажа"
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidWindow        = "некорректное окно дат"
	msgCatalogUnavailable   = "каталог номеров недоступен, попробуйте позже"
)

type Handler struct {
	useCase GetAvailabilityGridUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: start, end (required, YYYY-MM-DD), floor, reservationId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startStr, endStr := query.Get("start"), query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	floor, err := handlers.QueryInt(r, "floor")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid floor: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloor)
		return
	}

	reservationID, err := handlers.QueryInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("GET /availability - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr, floor, reservationID)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilityGrid.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.InputErrorMessage(msgInvalidWindow, err, getAvailabilityGrid.ErrInvalidInput))

		case errors.Is(err, getAvailabilityGrid.ErrCatalogUnavailable):
			h.logger.Error("GET /availability - Room catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to build grid: start=%s, end=%s, error=%v", startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Grid built successfully: start=%s, end=%s, rooms=%d, spans=%d",
		startStr, endStr, len(result.Grid.Rows), len(result.Spans))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
