package assignment

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

const table = "room_assignments"

// Коды ошибок PostgreSQL, которые означают конфликт назначения
const (
	pqExclusionViolation   = "23P01"
	pqSerializationFailure = "40001"
	pqForeignKeyViolation  = "23503"
)

var columns = []string{
	"id",
	"room_id",
	"reservation_id",
	"organization",
	"kind",
	"start_date",
	"end_date",
	"occupancy",
	"price_mode",
	"total_price",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий назначений номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockRoom берет транзакционную advisory-блокировку на номер
// Конкурентные записи по одному номеру выполняются строго по очереди до конца транзакции
func (r *Repository) LockRoom(ctx context.Context, roomID int64) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockRoom room=%d", ErrTransaction, roomID)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", roomID); err != nil {
		return fmt.Errorf("%w: LockRoom - execute: %v", ErrExecQuery, err)
	}
	return nil
}

// FetchAssignments получает назначения по фильтру
// Окно фильтрует назначения, у которых есть хотя бы одна ночь внутри окна.
// В транзакции строки блокируются (FOR UPDATE)
func (r *Repository) FetchAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomIDs})
	}
	if filter.Window != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_date": filter.Window.End}).
			Where(squirrel.Gt{"end_date": filter.Window.Start})
	}
	if filter.ReservationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_id": *filter.ReservationID})
	}

	selectBuilder = selectBuilder.OrderBy("room_id ASC", "start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListByReservation получает все назначения брони
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Assignment, error) {
	return r.FetchAssignments(ctx, domain.AssignmentFilter{ReservationID: &reservationID})
}

// GetByID получает назначение по ID; в транзакции строка блокируется
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAssignment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan assignment: %v", ErrScanRow, err)
	}

	return a, nil
}

// Insert сохраняет новое назначение
// Пересечение, отклоненное exclusion constraint, возвращается как ErrOverlap
func (r *Repository) Insert(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"room_id",
			"reservation_id",
			"organization",
			"kind",
			"start_date",
			"end_date",
			"occupancy",
			"price_mode",
			"total_price",
			"notes",
		).
		Values(
			a.RoomID,
			nullableReservation(a.ReservationID),
			a.Organization,
			string(a.Kind),
			a.Interval.Start,
			a.Interval.End,
			a.Occupancy,
			string(a.Price.Mode),
			a.Price.Amount,
			a.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapWriteError("Insert", err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// Update перезаписывает изменяемые поля назначения
func (r *Repository) Update(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("room_id", a.RoomID).
		Set("organization", a.Organization).
		Set("start_date", a.Interval.Start).
		Set("end_date", a.Interval.End).
		Set("occupancy", a.Occupancy).
		Set("price_mode", string(a.Price.Mode)).
		Set("total_price", a.Price.Amount).
		Set("notes", a.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update", err)
	}

	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// Delete удаляет назначение по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// DeleteByReservation удаляет все назначения брони и возвращает их количество
func (r *Repository) DeleteByReservation(ctx context.Context, reservationID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservation - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservation - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservation - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// mapWriteError переводит ошибки PostgreSQL в ошибки репозитория
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqExclusionViolation, pqSerializationFailure:
			return fmt.Errorf("%w: %s - %s", ErrOverlap, op, pqErr.Message)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s - %s", ErrReservationMissing, op, pqErr.Message)
		}
	}
	return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
}

// IsOverlap сообщает, что ошибка записи означает пересечение с другим назначением
// Распознает и ошибку сериализации, всплывшую при фиксации транзакции
func IsOverlap(err error) bool {
	if errors.Is(err, ErrOverlap) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqExclusionViolation || pqErr.Code == pqSerializationFailure
	}
	return false
}

func nullableReservation(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var (
		a                    domain.Assignment
		reservationID        sql.NullInt64
		kind, priceMode      string
		notes                sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.RoomID,
		&reservationID,
		&a.Organization,
		&kind,
		&a.Interval.Start,
		&a.Interval.End,
		&a.Occupancy,
		&priceMode,
		&a.Price.Amount,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if a.Kind, err = domain.ParseAssignmentKind(kind); err != nil {
		return nil, err
	}
	if a.Price.Mode, err = domain.ParsePriceMode(priceMode); err != nil {
		return nil, err
	}

	a.ReservationID = reservationID.Int64
	a.Interval.Start = domain.DateOf(a.Interval.Start)
	a.Interval.End = domain.DateOf(a.Interval.End)
	if notes.Valid {
		a.Notes = &notes.String
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAssignments(rows *sql.Rows) ([]domain.Assignment, error) {
	assignments := make([]domain.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan assignment: %v", ErrScanRow, err)
		}
		assignments = append(assignments, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return assignments, nil
}
