package update_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	updateAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/update_assignment"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры назначения"
	msgNotFound            = "назначение не найдено"
	msgRoomNotFound        = "номер не найден"
	msgRoomNotAvailable    = "номер занят на выбранные даты"
	msgCatalogUnavailable  = "каталог номеров недоступен, попробуйте позже"
)

type Handler struct {
	useCase UpdateAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := handlers.PathInt64(r, "assignmentId")
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id} - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	var req UpdateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /assignments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(assignmentID)
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAssignment.ErrConflict):
			h.logger.Warn("PATCH /assignments/{id} - Room not available: assignment_id=%d: %v", assignmentID, err)
			handlers.RespondConflict(w, handlers.ConflictMessage(msgRoomNotAvailable, err))

		case errors.Is(err, updateAssignment.ErrInvalidInput):
			h.logger.Warn("PATCH /assignments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.InputErrorMessage(msgInvalidInput, err, updateAssignment.ErrInvalidInput))

		case errors.Is(err, updateAssignment.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /assignments/{id} - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAssignment.ErrRoomNotFound):
			h.logger.Warn("PATCH /assignments/{id} - Room not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateAssignment.ErrCatalogUnavailable):
			h.logger.Error("PATCH /assignments/{id} - Room catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		default:
			h.logger.Error("PATCH /assignments/{id} - Failed to update assignment: assignment_id=%d, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /assignments/{id} - Assignment updated successfully: assignment_id=%d", assignmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
