package delete_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeStore struct {
	calls     []string
	failSteps map[domain.ReservationStep]error
	deleteErr error
	exists    bool
}

func (f *fakeStore) step(s domain.ReservationStep, n int64) (int64, error) {
	f.calls = append(f.calls, string(s))
	if err := f.failSteps[s]; err != nil {
		return 0, err
	}
	return n, nil
}

func (f *fakeStore) DeleteByReservation(_ context.Context, _ int64) (int64, error) {
	return f.step(domain.StepRoomAssignments, 3)
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if !f.exists {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return &domain.Reservation{ID: id, Organization: "Alpha"}, nil
}

func (f *fakeStore) DeleteMealPlans(_ context.Context, _ int64) (int64, error) {
	return f.step(domain.StepMealPlans, 2)
}

func (f *fakeStore) DeleteVenueBookings(_ context.Context, _ int64) (int64, error) {
	return f.step(domain.StepVenueBookings, 1)
}

func (f *fakeStore) DeleteParticipants(_ context.Context, _ int64) (int64, error) {
	return f.step(domain.StepParticipants, 12)
}

func (f *fakeStore) Delete(_ context.Context, _ int64) error {
	f.calls = append(f.calls, "reservation")
	return f.deleteErr
}

func newUseCase(store *fakeStore) *UseCase {
	return NewUseCase(store, store, logger.NewNop())
}

func TestExecute_FullCascade(t *testing.T) {
	store := &fakeStore{exists: true}

	resp, err := newUseCase(store).Execute(context.Background(), &Request{ReservationID: 10})

	require.NoError(t, err)
	assert.True(t, resp.Complete())
	assert.Equal(t, []string{"room_assignments", "meal_plans", "venue_bookings", "participants", "reservation"}, store.calls)
	assert.Equal(t, int64(3), resp.Deleted[domain.StepRoomAssignments])
	assert.Equal(t, int64(12), resp.Deleted[domain.StepParticipants])
}

func TestExecute_FailedStepDoesNotStopCascade(t *testing.T) {
	store := &fakeStore{
		exists:    true,
		failSteps: map[domain.ReservationStep]error{domain.StepMealPlans: errors.New("meal_plans locked")},
	}

	resp, err := newUseCase(store).Execute(context.Background(), &Request{ReservationID: 10})

	require.NoError(t, err)
	assert.False(t, resp.Complete())
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, domain.StepMealPlans, resp.Failed[0].Step)
	assert.NotContains(t, resp.Deleted, domain.StepMealPlans)
	assert.Contains(t, store.calls, "venue_bookings")
	assert.Contains(t, store.calls, "participants")
	assert.Equal(t, "reservation", store.calls[len(store.calls)-1])
}

func TestExecute_RootFailureIsFatal(t *testing.T) {
	store := &fakeStore{exists: true, deleteErr: errors.New("fk violation")}

	resp, err := newUseCase(store).Execute(context.Background(), &Request{ReservationID: 10})

	assert.ErrorIs(t, err, ErrInternal)
	require.NotNil(t, resp)
	assert.Len(t, resp.Deleted, 4)
}

func TestExecute_RootStillReferenced(t *testing.T) {
	store := &fakeStore{
		exists:    true,
		failSteps: map[domain.ReservationStep]error{domain.StepRoomAssignments: errors.New("room_assignments locked")},
		deleteErr: fmt.Errorf("%w: Delete - fk", reservationRepo.ErrReservationFKViolation),
	}

	resp, err := newUseCase(store).Execute(context.Background(), &Request{ReservationID: 10})

	assert.ErrorIs(t, err, ErrDependentsRemain)
	assert.NotErrorIs(t, err, ErrInternal)
	require.NotNil(t, resp)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, domain.StepRoomAssignments, resp.Failed[0].Step)
}

func TestExecute_NotFound(t *testing.T) {
	store := &fakeStore{}

	_, err := newUseCase(store).Execute(context.Background(), &Request{ReservationID: 10})

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, store.calls)
}

func TestExecute_CancelledContext(t *testing.T) {
	store := &fakeStore{exists: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newUseCase(store).Execute(ctx, &Request{ReservationID: 10})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, store.calls)
}

func TestExecute_InvalidID(t *testing.T) {
	_, err := newUseCase(&fakeStore{}).Execute(context.Background(), &Request{ReservationID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
