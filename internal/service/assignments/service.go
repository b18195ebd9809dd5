package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/assignment"
	reservationRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments/models"
)

// Service сервис чтения и удаления назначений
type Service struct {
	assignmentRepo  AssignmentRepository
	reservationRepo ReservationRepository
	catalog         RoomCatalog
	logger          Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(
	assignmentRepo AssignmentRepository,
	reservationRepo ReservationRepository,
	catalog RoomCatalog,
	logger Logger,
) *Service {
	return &Service{
		assignmentRepo:  assignmentRepo,
		reservationRepo: reservationRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// GetByID получает назначение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AssignmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: assignmentID must be positive", ErrInvalidInput)
	}

	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("GetAssignment: assignment id=%d not found", id)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("GetAssignment: repository error for assignment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignment(a), nil
}

// Delete удаляет назначение; освобожденные ночи сразу видны в сетке
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: assignmentID must be positive", ErrInvalidInput)
	}

	s.logger.Info("DeleteAssignment: deleting assignment id=%d", id)

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("DeleteAssignment: assignment id=%d not found", id)
			return ErrAssignmentNotFound
		}
		s.logger.Error("DeleteAssignment: repository error for assignment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAssignment: successfully deleted assignment id=%d", id)
	return nil
}

// GetReservationSummary собирает сводку назначений брони
// Недоступность каталога не ломает сводку: строки остаются без названий номеров
func (s *Service) GetReservationSummary(ctx context.Context, reservationID int64) (*models.ReservationSummary, error) {
	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetReservationSummary: reservation=%d", reservationID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetReservationSummary: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservationSummary: failed to get reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetReservationSummary - reservation: %v", ErrInternal, err)
	}

	list, err := s.assignmentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.Error("GetReservationSummary: failed to list assignments for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetReservationSummary - assignments: %v", ErrInternal, err)
	}

	catalogFailed := false
	rooms := make(map[int64]domain.Room)
	if len(list) > 0 {
		all, err := s.catalog.ListRooms(ctx, nil)
		if err != nil {
			s.logger.Error("GetReservationSummary: room catalog unavailable, summary without room names: %v", err)
			catalogFailed = true
		}
		for _, r := range all {
			rooms[r.ID] = r
		}
	}

	summary := models.BuildSummary(res, list, rooms)
	summary.CatalogFailed = catalogFailed

	s.logger.Info("GetReservationSummary: reservation=%d rooms=%d roomNights=%d total=%d",
		reservationID, summary.RoomCount, summary.RoomNights, summary.TotalPrice)
	return summary, nil
}
