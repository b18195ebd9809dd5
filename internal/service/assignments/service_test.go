package assignments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/assignment"
	reservationRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeAssignments struct {
	byID    map[int64]domain.Assignment
	listErr error
}

func (f *fakeAssignments) GetByID(_ context.Context, id int64) (*domain.Assignment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	return &a, nil
}

func (f *fakeAssignments) ListByReservation(_ context.Context, reservationID int64) ([]domain.Assignment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Assignment, 0)
	for _, a := range f.byID {
		if a.ReservationID == reservationID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignments) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeReservations struct{}

func (fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if id != 10 {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return &domain.Reservation{ID: 10, Organization: "Alpha"}, nil
}

type fakeCatalog struct {
	err error
}

func (f fakeCatalog) ListRooms(_ context.Context, _ *int) ([]domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Room{
		{ID: 101, Name: "101", Floor: 1, Capacity: 2},
		{ID: 102, Name: "102", Floor: 1, Capacity: 2},
	}, nil
}

func day(d int) time.Time {
	return domain.Date(2024, time.March, d)
}

func fixture() *fakeAssignments {
	return &fakeAssignments{byID: map[int64]domain.Assignment{
		1: {ID: 1, RoomID: 101, ReservationID: 10, Organization: "Alpha", Kind: domain.KindGuest,
			Interval: domain.MustDateInterval(day(1), day(4)), Occupancy: 2,
			Price: domain.Price{Mode: domain.PriceModeComputed, Amount: 150000}},
		2: {ID: 2, RoomID: 102, ReservationID: 10, Organization: "Alpha", Kind: domain.KindGuest,
			Interval: domain.MustDateInterval(day(1), day(3)), Occupancy: 1,
			Price: domain.OverridePrice(80000)},
		3: {ID: 3, RoomID: 101, ReservationID: 11, Organization: "Beta", Kind: domain.KindGuest,
			Interval: domain.MustDateInterval(day(4), day(6)), Occupancy: 1,
			Price: domain.Price{Mode: domain.PriceModeComputed, Amount: 100000}},
	}}
}

func TestGetByID(t *testing.T) {
	svc := NewService(fixture(), fakeReservations{}, fakeCatalog{}, logger.NewNop())

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Nights)
	assert.Equal(t, int64(50000), got.NightlyPrice)
	require.NotNil(t, got.ReservationID)
	assert.Equal(t, int64(10), *got.ReservationID)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := fixture()
	svc := NewService(repo, fakeReservations{}, fakeCatalog{}, logger.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.NotContains(t, repo.byID, int64(3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrAssignmentNotFound)
}

func TestGetReservationSummary(t *testing.T) {
	svc := NewService(fixture(), fakeReservations{}, fakeCatalog{}, logger.NewNop())

	summary, err := svc.GetReservationSummary(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Alpha", summary.Organization)
	assert.Len(t, summary.Lines, 2)
	assert.Equal(t, 2, summary.RoomCount)
	assert.Equal(t, 5, summary.RoomNights)
	assert.Equal(t, int64(230000), summary.TotalPrice)
	assert.False(t, summary.CatalogFailed)
	for _, line := range summary.Lines {
		assert.NotEmpty(t, line.RoomName)
	}
}

func TestGetReservationSummary_CatalogDown(t *testing.T) {
	svc := NewService(fixture(), fakeReservations{}, fakeCatalog{err: errors.New("timeout")}, logger.NewNop())

	summary, err := svc.GetReservationSummary(context.Background(), 10)

	require.NoError(t, err)
	assert.True(t, summary.CatalogFailed)
	assert.Equal(t, int64(230000), summary.TotalPrice)
	for _, line := range summary.Lines {
		assert.Empty(t, line.RoomName)
	}
}

func TestGetReservationSummary_Errors(t *testing.T) {
	svc := NewService(fixture(), fakeReservations{}, fakeCatalog{}, logger.NewNop())
	_, err := svc.GetReservationSummary(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	broken := fixture()
	broken.listErr = errors.New("connection reset")
	svc = NewService(broken, fakeReservations{}, fakeCatalog{}, logger.NewNop())
	_, err = svc.GetReservationSummary(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInternal)
}
