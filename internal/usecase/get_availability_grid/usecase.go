package get_availability_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
)

// UseCase use case для построения сетки доступности номеров
type UseCase struct {
	assignmentRepo AssignmentRepository
	catalog        RoomCatalog
	maxWindowDays  int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// maxWindowDays <= 0 заменяется значением по умолчанию
func NewUseCase(assignmentRepo AssignmentRepository, catalog RoomCatalog, maxWindowDays int, logger Logger) *UseCase {
	if maxWindowDays <= 0 {
		maxWindowDays = domain.DefaultMaxWindowDays
	}
	return &UseCase{
		assignmentRepo: assignmentRepo,
		catalog:        catalog,
		maxWindowDays:  maxWindowDays,
		logger:         logger,
	}
}

// Execute строит сетку номер x день и объединенные спаны для окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilityGrid: start=%s, end=%s",
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))

	// 1. Валидация входных данных
	window, err := validateRequest(req, uc.maxWindowDays)
	if err != nil {
		uc.logger.Warn("GetAvailabilityGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номера
	rooms, err := uc.catalog.ListRooms(ctx, req.Floor)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			uc.logger.Error("GetAvailabilityGrid: room catalog unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		if errors.Is(err, catalog.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailabilityGrid: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Получаем назначения в окне
	var assignments []domain.Assignment
	if len(rooms) > 0 {
		roomIDs := make([]int64, 0, len(rooms))
		for _, r := range rooms {
			roomIDs = append(roomIDs, r.ID)
		}

		assignments, err = uc.assignmentRepo.FetchAssignments(ctx, domain.AssignmentFilter{
			RoomIDs: roomIDs,
			Window:  &window,
		})
		if err != nil {
			uc.logger.Error("GetAvailabilityGrid: failed to fetch assignments: %v", err)
			return nil, fmt.Errorf("%w: failed to fetch assignments: %v", ErrInternal, err)
		}
	}

	// 4. Строим сетку и спаны
	grid, err := availability.Build(rooms, window, assignments, req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	spans := availability.Merge(grid, window)

	uc.logger.Info("GetAvailabilityGrid: built grid for %d rooms x %d days, %d spans",
		len(grid.Rows), len(grid.Dates), len(spans))

	return &Response{
		Grid:   grid,
		Spans:  spans,
		Counts: grid.Counts(),
	}, nil
}
