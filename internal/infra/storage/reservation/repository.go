package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/psqlbuilder"
)

const pqForeignKeyViolation = "23503"

// Таблицы зависимых записей брони
const (
	tableReservations  = "reservations"
	tableMealPlans     = "meal_plans"
	tableVenueBookings = "venue_bookings"
	tableParticipants  = "participants"
)

// Repository репозиторий броней и их зависимых записей
// Сами питание, площадки и участники ведутся другими сервисами; здесь только их каскадное удаление
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"organization",
		"contact_name",
		"created_at",
		"updated_at",
	).
		From(tableReservations).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		res                  domain.Reservation
		contactName          sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Organization,
		&contactName,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	if contactName.Valid {
		res.ContactName = &contactName.String
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// DeleteMealPlans удаляет планы питания брони
func (r *Repository) DeleteMealPlans(ctx context.Context, reservationID int64) (int64, error) {
	return r.deleteDependents(ctx, "DeleteMealPlans", tableMealPlans, reservationID)
}

// DeleteVenueBookings удаляет бронирования площадок
func (r *Repository) DeleteVenueBookings(ctx context.Context, reservationID int64) (int64, error) {
	return r.deleteDependents(ctx, "DeleteVenueBookings", tableVenueBookings, reservationID)
}

// DeleteParticipants удаляет участников брони
func (r *Repository) DeleteParticipants(ctx context.Context, reservationID int64) (int64, error) {
	return r.deleteDependents(ctx, "DeleteParticipants", tableParticipants, reservationID)
}

// Delete удаляет саму бронь
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableReservations).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return fmt.Errorf("%w: Delete - %s", ErrReservationFKViolation, pqErr.Message)
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) deleteDependents(ctx context.Context, op, table string, reservationID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}

	return affected, nil
}
