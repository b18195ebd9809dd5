package delete_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/reservation"
)

// UseCase use case для каскадного удаления брони
type UseCase struct {
	assignmentRepo  AssignmentRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(assignmentRepo AssignmentRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		assignmentRepo:  assignmentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute удаляет зависимые записи в порядке domain.CascadeOrder, затем саму бронь
// Ошибка шага не останавливает каскад: она логируется и попадает в Failed.
// Ошибка удаления самой брони фатальна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteReservation: reservation=%d", req.ReservationID)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	// 1. Проверяем, что бронь существует
	if _, err := uc.reservationRepo.GetByID(ctx, req.ReservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("DeleteReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("DeleteReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	resp := &Response{
		ReservationID: req.ReservationID,
		Deleted:       make(map[domain.ReservationStep]int64, len(domain.CascadeOrder)),
	}

	// 2. Удаляем зависимые записи
	for _, step := range domain.CascadeOrder {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("DeleteReservation: cascade for reservation id=%d interrupted before %s: %v",
				req.ReservationID, step, err)
			return resp, fmt.Errorf("%w: cascade interrupted: %v", ErrInternal, err)
		}

		count, err := uc.runStep(ctx, step, req.ReservationID)
		if err != nil {
			uc.logger.Error("DeleteReservation: step %s failed for reservation id=%d: %v", step, req.ReservationID, err)
			resp.Failed = append(resp.Failed, StepFailure{Step: step, Error: err.Error()})
			continue
		}

		resp.Deleted[step] = count
		uc.logger.Info("DeleteReservation: step %s removed %d rows", step, count)
	}

	// 3. Удаляем саму бронь
	if err := uc.reservationRepo.Delete(ctx, req.ReservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("DeleteReservation: reservation id=%d disappeared during cascade", req.ReservationID)
			return resp, ErrReservationNotFound
		}
		if errors.Is(err, reservationRepo.ErrReservationFKViolation) {
			uc.logger.Error("DeleteReservation: reservation id=%d still referenced after cascade (failed=%d): %v",
				req.ReservationID, len(resp.Failed), err)
			return resp, fmt.Errorf("%w: %v", ErrDependentsRemain, err)
		}
		uc.logger.Error("DeleteReservation: failed to delete reservation id=%d (deleted=%v, failed=%d): %v",
			req.ReservationID, resp.Deleted, len(resp.Failed), err)
		return resp, fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}

	if resp.Complete() {
		uc.logger.Info("DeleteReservation: successfully deleted reservation id=%d", req.ReservationID)
	} else {
		uc.logger.Warn("DeleteReservation: deleted reservation id=%d with %d failed steps", req.ReservationID, len(resp.Failed))
	}

	return resp, nil
}

func (uc *UseCase) runStep(ctx context.Context, step domain.ReservationStep, reservationID int64) (int64, error) {
	switch step {
	case domain.StepRoomAssignments:
		return uc.assignmentRepo.DeleteByReservation(ctx, reservationID)
	case domain.StepMealPlans:
		return uc.reservationRepo.DeleteMealPlans(ctx, reservationID)
	case domain.StepVenueBookings:
		return uc.reservationRepo.DeleteVenueBookings(ctx, reservationID)
	case domain.StepParticipants:
		return uc.reservationRepo.DeleteParticipants(ctx, reservationID)
	default:
		return 0, fmt.Errorf("unknown cascade step %q", step)
	}
}
