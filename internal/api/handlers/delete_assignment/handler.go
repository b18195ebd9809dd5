package delete_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgNotFound            = "назначение не найдено"
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

// Handle DELETE /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := handlers.PathInt64(r, "assignmentId")
	if err != nil {
		h.logger.Warn("DELETE /assignments/{id} - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	if err := h.service.Delete(r.Context(), assignmentID); err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("DELETE /assignments/{id} - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("DELETE /assignments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAssignmentID)

		default:
			h.logger.Error("DELETE /assignments/{id} - Failed to delete assignment: assignment_id=%d, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /assignments/{id} - Assignment deleted successfully: assignment_id=%d", assignmentID)
	handlers.RespondNoContent(w)
}
