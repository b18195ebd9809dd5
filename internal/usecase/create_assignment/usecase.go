package create_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/assignment"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
)

// UseCase use case для назначения номера брони
type UseCase struct {
	assignmentRepo AssignmentRepository
	catalog        RoomCatalog
	calculator     PriceCalculator
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	catalog RoomCatalog,
	calculator PriceCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		catalog:        catalog,
		calculator:     calculator,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания назначения
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
// под блокировкой номера, поэтому два конкурентных запроса не займут одну ночь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAssignment: room=%d, reservation=%d, kind=%s, start=%s, end=%s, occupancy=%d",
		req.RoomID, req.ReservationID, req.Kind,
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat), req.Occupancy)

	// 1. Валидация входных данных
	kind, interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAssignment: validation failed: %v", err)
		return nil, err
	}

	occupancy := req.Occupancy
	if kind == domain.KindMaintenance && occupancy < 1 {
		occupancy = 1
	}

	// 2. Получаем номер из каталога
	room, err := uc.catalog.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, uc.mapCatalogError(req.RoomID, err)
	}

	// 3. Считаем цену до транзакции: каталог и калькулятор не зависят от БД
	price := domain.Price{Mode: domain.PriceModeComputed}
	if kind == domain.KindGuest {
		price, err = uc.calculator.Resolve(requestedPrice(req.PriceOverride), *room, interval, occupancy)
		if err != nil {
			uc.logger.Error("CreateAssignment: failed to price room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to price stay: %v", ErrInternal, err)
		}
	}

	candidate := &domain.Assignment{
		RoomID:        room.ID,
		ReservationID: req.ReservationID,
		Organization:  req.Organization,
		Kind:          kind,
		Interval:      interval,
		Occupancy:     occupancy,
		Price:         price,
		Notes:         req.Notes,
	}

	var result *domain.Assignment

	// 4. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем номер до конца транзакции
		if err := uc.assignmentRepo.LockRoom(txCtx, room.ID); err != nil {
			uc.logger.Error("CreateAssignment: failed to lock room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
		}

		// 4.2. Читаем назначения номера, пересекающие интервал
		existing, err := uc.assignmentRepo.FetchAssignments(txCtx, domain.AssignmentFilter{
			RoomIDs: []int64{room.ID},
			Window:  &interval,
		})
		if err != nil {
			uc.logger.Error("CreateAssignment: failed to fetch assignments for room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to fetch assignments: %v", ErrInternal, err)
		}

		// 4.3. Проверяем пересечения
		if err := availability.Validate(availability.Candidate{
			RoomID:    room.ID,
			Interval:  interval,
			Occupancy: occupancy,
		}, existing); err != nil {
			var conflict *availability.ConflictError
			if errors.As(err, &conflict) {
				uc.logger.Warn("CreateAssignment: %v", conflict)
				return fmt.Errorf("%w: %w", ErrConflict, conflict)
			}
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 4.4. Создаем назначение
		created, err := uc.assignmentRepo.Insert(txCtx, candidate)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapWriteError(err)
	}

	uc.logger.Info("CreateAssignment: successfully created assignment id=%d, room=%d, %s, total=%d",
		result.ID, result.RoomID, result.Interval, result.TotalPrice())

	return fromDomain(result), nil
}

func (uc *UseCase) mapCatalogError(roomID int64, err error) error {
	switch {
	case errors.Is(err, catalog.ErrRoomNotFound):
		uc.logger.Warn("CreateAssignment: room id=%d not found in catalog", roomID)
		return ErrRoomNotFound
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		uc.logger.Error("CreateAssignment: room catalog unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	default:
		uc.logger.Error("CreateAssignment: failed to get room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
}

func (uc *UseCase) mapWriteError(err error) error {
	switch {
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInternal):
		return err
	case assignmentRepo.IsOverlap(err):
		uc.logger.Warn("CreateAssignment: concurrent write rejected by database: %v", err)
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, assignmentRepo.ErrReservationMissing):
		uc.logger.Warn("CreateAssignment: reservation does not exist: %v", err)
		return ErrReservationNotFound
	default:
		uc.logger.Error("CreateAssignment: failed to create assignment: %v", err)
		return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
	}
}
