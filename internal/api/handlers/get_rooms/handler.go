package get_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
)

const (
	msgInvalidFloor       = "некорректный номер этажа"
	msgCatalogUnavailable = "каталог номеров недоступен, попробуйте позже"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Query params: floor (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	floor, err := handlers.QueryInt(r, "floor")
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid floor: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloor)
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), floor)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFloor)

		case errors.Is(err, catalog.ErrCatalogUnavailable):
			h.logger.Error("GET /rooms - Room catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(rooms))
}
