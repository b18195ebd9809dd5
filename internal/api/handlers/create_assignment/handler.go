package create_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	createAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/create_assignment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры назначения"
	msgRoomNotAvailable    = "номер занят на выбранные даты"
	msgRoomNotFound        = "номер не найден"
	msgReservationNotFound = "бронь не найдена"
	msgCatalogUnavailable  = "каталог номеров недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /assignments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAssignment.ErrConflict):
			h.logger.Warn("POST /assignments - Room not available: room_id=%d, reservation_id=%d: %v",
				req.RoomID, req.ReservationID, err)
			handlers.RespondConflict(w, handlers.ConflictMessage(msgRoomNotAvailable, err))

		case errors.Is(err, createAssignment.ErrInvalidInput):
			h.logger.Warn("POST /assignments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.InputErrorMessage(msgInvalidInput, err, createAssignment.ErrInvalidInput))

		case errors.Is(err, createAssignment.ErrRoomNotFound):
			h.logger.Warn("POST /assignments - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createAssignment.ErrReservationNotFound):
			h.logger.Warn("POST /assignments - Reservation not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, createAssignment.ErrCatalogUnavailable):
			h.logger.Error("POST /assignments - Room catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /assignments - Failed to create assignment: room_id=%d, reservation_id=%d, error=%v",
				req.RoomID, req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /assignments - Assignment created successfully: assignment_id=%d, room_id=%d, reservation_id=%d",
		result.ID, result.RoomID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
