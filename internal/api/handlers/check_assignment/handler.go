package check_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	checkAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/check_assignment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры назначения"
	msgRoomNotFound       = "номер не найден"
	msgCatalogUnavailable = "каталог номеров недоступен, попробуйте позже"
)

type Handler struct {
	useCase CheckAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CheckAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments/check
// Занятость не является ошибкой: ответ 200 с available=false и списком конфликтов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assignments/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /assignments/check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAssignment.ErrInvalidInput):
			h.logger.Warn("POST /assignments/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.InputErrorMessage(msgInvalidInput, err, checkAssignment.ErrInvalidInput))

		case errors.Is(err, checkAssignment.ErrRoomNotFound):
			h.logger.Warn("POST /assignments/check - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAssignment.ErrCatalogUnavailable):
			h.logger.Error("POST /assignments/check - Room catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /assignments/check - Failed to check assignment: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments/check - Checked: room_id=%d, available=%t, conflicts=%d",
		result.RoomID, result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
