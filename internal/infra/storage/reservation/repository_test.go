package reservation

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/pkg/dbmetrics"
)

func setupRepo(t *testing.T) (sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewRepository(dbmetrics.Wrap(db, nil))
}

func TestGetByID(t *testing.T) {
	mock, repo := setupRepo(t)
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, organization, contact_name, created_at, updated_at FROM reservations WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization", "contact_name", "created_at", "updated_at"}).
			AddRow(int64(10), "Alpha", "Tanaka", now, now))

	res, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Alpha", res.Organization)
	require.NotNil(t, res.ContactName)
	assert.Equal(t, "Tanaka", *res.ContactName)
}

func TestGetByID_NotFound(t *testing.T) {
	mock, repo := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization", "contact_name", "created_at", "updated_at"}))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDeleteDependents(t *testing.T) {
	mock, repo := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM meal_plans WHERE reservation_id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venue_bookings WHERE reservation_id = $1")).
		WithArgs(int64(10)).
		WillReturnError(errors.New("relation is locked"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM participants WHERE reservation_id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.DeleteMealPlans(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.DeleteVenueBookings(context.Background(), 10)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "DeleteVenueBookings")

	n, err = repo.DeleteParticipants(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	mock, repo := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 10))
	assert.ErrorIs(t, repo.Delete(context.Background(), 11), ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_StillReferenced(t *testing.T) {
	mock, repo := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint \"room_assignments_reservation_id_fkey\""})

	err := repo.Delete(context.Background(), 10)

	assert.ErrorIs(t, err, ErrReservationFKViolation)
	assert.NotErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
