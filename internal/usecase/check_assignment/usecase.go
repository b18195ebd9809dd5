package check_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
)

// UseCase use case для проверки назначения и расчета цены без записи
type UseCase struct {
	assignmentRepo AssignmentRepository
	catalog        RoomCatalog
	calculator     PriceCalculator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	catalog RoomCatalog,
	calculator PriceCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		catalog:        catalog,
		calculator:     calculator,
		logger:         logger,
	}
}

// Execute проверяет, свободен ли номер, и рассчитывает цену
// Результат информативный: между проверкой и созданием номер может быть занят
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAssignment: room=%d, start=%s, end=%s, occupancy=%d",
		req.RoomID, req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat), req.Occupancy)

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.catalog.GetRoom(ctx, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			uc.logger.Warn("CheckAssignment: room id=%d not found in catalog", req.RoomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			uc.logger.Error("CheckAssignment: room catalog unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		default:
			uc.logger.Error("CheckAssignment: failed to get room id=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
	}

	// 3. Читаем назначения номера, пересекающие интервал
	existing, err := uc.assignmentRepo.FetchAssignments(ctx, domain.AssignmentFilter{
		RoomIDs: []int64{room.ID},
		Window:  &interval,
	})
	if err != nil {
		uc.logger.Error("CheckAssignment: failed to fetch assignments for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to fetch assignments: %v", ErrInternal, err)
	}

	// 4. Ищем все конфликты
	conflicts, err := availability.FindConflicts(availability.Candidate{
		RoomID:              room.ID,
		Interval:            interval,
		Occupancy:           req.Occupancy,
		ExcludeAssignmentID: req.ExcludeAssignmentID,
	}, existing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Считаем цену
	requested := domain.ComputedPrice()
	if req.PriceOverride != nil {
		requested = domain.OverridePrice(*req.PriceOverride)
	}
	price, err := uc.calculator.Resolve(requested, *room, interval, req.Occupancy)
	if err != nil {
		uc.logger.Error("CheckAssignment: failed to price room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to price stay: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:       room.ID,
		RoomName:     room.Name,
		Capacity:     room.Capacity,
		Start:        interval.Start,
		End:          interval.End,
		Nights:       interval.Nights(),
		Occupancy:    req.Occupancy,
		OverCapacity: req.Occupancy > room.Capacity,
		Available:    len(conflicts) == 0,
		Conflicts:    make([]Conflict, 0, len(conflicts)),
		PriceMode:    price.Mode,
		TotalPrice:   price.Amount,
		NightlyPrice: price.Amount / int64(interval.Nights()),
	}
	if !price.IsOverride() {
		resp.Surcharge = uc.calculator.Surcharge(interval.Nights(), req.Occupancy, room.Capacity)
	}
	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, conflictFromDomain(c))
	}

	uc.logger.Info("CheckAssignment: room=%d available=%t conflicts=%d total=%d",
		room.ID, resp.Available, len(resp.Conflicts), resp.TotalPrice)

	return resp, nil
}
