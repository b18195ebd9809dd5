package update_assignment

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/assignment"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
)

// UseCase use case для изменения назначения на месте
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

// Execute применяет изменения к назначению
// Само назначение исключается из проверки пересечений; расчетная цена пересчитывается,
// явная сохраняется, пока её не сбросят
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAssignment: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Предварительно читаем назначение, чтобы знать исходный номер
	before, err := uc.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, uc.mapReadError(req.ID, err)
	}

	// 3. Получаем целевой номер
	targetRoomID := before.RoomID
	if req.RoomID != nil {
		targetRoomID = *req.RoomID
	}
	room, err := uc.catalog.GetRoom(ctx, targetRoomID)
	if err != nil {
		return nil, uc.mapCatalogError(targetRoomID, err)
	}

	var result *domain.Assignment

	// 4. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем исходный и целевой номера в порядке возрастания ID
		locked := lockOrder(before.RoomID, targetRoomID)
		for _, roomID := range locked {
			if err := uc.assignmentRepo.LockRoom(txCtx, roomID); err != nil {
				uc.logger.Error("UpdateAssignment: failed to lock room id=%d: %v", roomID, err)
				return fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
			}
		}

		// 4.2. Перечитываем назначение под блокировкой
		current, err := uc.assignmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return uc.mapReadError(req.ID, err)
		}
		if current.RoomID != before.RoomID {
			uc.logger.Warn("UpdateAssignment: assignment id=%d was moved concurrently", req.ID)
			return fmt.Errorf("%w: assignment was changed concurrently", ErrConflict)
		}

		// 4.3. Применяем изменения
		patch := req.toPatch()
		updated := patch.Apply(*current)
		if err := validateUpdated(current, &updated, req); err != nil {
			uc.logger.Warn("UpdateAssignment: validation failed: %v", err)
			return err
		}

		// 4.4. Проверяем пересечения в целевом номере
		existing, err := uc.assignmentRepo.FetchAssignments(txCtx, domain.AssignmentFilter{
			RoomIDs: []int64{updated.RoomID},
			Window:  &updated.Interval,
		})
		if err != nil {
			uc.logger.Error("UpdateAssignment: failed to fetch assignments for room id=%d: %v", updated.RoomID, err)
			return fmt.Errorf("%w: failed to fetch assignments: %v", ErrInternal, err)
		}

		if err := availability.Validate(availability.Candidate{
			RoomID:              updated.RoomID,
			Interval:            updated.Interval,
			Occupancy:           updated.Occupancy,
			ExcludeAssignmentID: &updated.ID,
		}, existing); err != nil {
			var conflict *availability.ConflictError
			if errors.As(err, &conflict) {
				uc.logger.Warn("UpdateAssignment: %v", conflict)
				return fmt.Errorf("%w: %w", ErrConflict, conflict)
			}
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 4.5. Пересчитываем цену
		if !updated.IsMaintenance() {
			price, err := uc.calculator.Resolve(updated.Price, *room, updated.Interval, updated.Occupancy)
			if err != nil {
				uc.logger.Error("UpdateAssignment: failed to price room id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: failed to price stay: %v", ErrInternal, err)
			}
			updated.Price = price
		}

		// 4.6. Сохраняем
		saved, err := uc.assignmentRepo.Update(txCtx, &updated)
		if err != nil {
			return err
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, uc.mapWriteError(err)
	}

	uc.logger.Info("UpdateAssignment: successfully updated assignment id=%d, room=%d, %s, total=%d",
		result.ID, result.RoomID, result.Interval, result.TotalPrice())

	return fromDomain(result), nil
}

// lockOrder возвращает уникальные ID номеров по возрастанию
func lockOrder(ids ...int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (uc *UseCase) mapReadError(id int64, err error) error {
	if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
		uc.logger.Warn("UpdateAssignment: assignment id=%d not found", id)
		return ErrAssignmentNotFound
	}
	uc.logger.Error("UpdateAssignment: failed to get assignment id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
}

func (uc *UseCase) mapCatalogError(roomID int64, err error) error {
	switch {
	case errors.Is(err, catalog.ErrRoomNotFound):
		uc.logger.Warn("UpdateAssignment: room id=%d not found in catalog", roomID)
		return ErrRoomNotFound
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		uc.logger.Error("UpdateAssignment: room catalog unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	default:
		uc.logger.Error("UpdateAssignment: failed to get room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
}

func (uc *UseCase) mapWriteError(err error) error {
	switch {
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrAssignmentNotFound), errors.Is(err, ErrInternal):
		return err
	case assignmentRepo.IsOverlap(err):
		uc.logger.Warn("UpdateAssignment: concurrent write rejected by database: %v", err)
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, assignmentRepo.ErrAssignmentNotFound):
		return ErrAssignmentNotFound
	default:
		uc.logger.Error("UpdateAssignment: failed to update assignment: %v", err)
		return fmt.Errorf("%w: failed to update assignment: %v", ErrInternal, err)
	}
}
