package check_assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	checkAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/check_assignment"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeUseCase struct {
	got  *checkAssignment.Request
	resp *checkAssignment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAssignment.Request) (*checkAssignment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/assignments/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

const validBody = `{"roomId":101,"startDate":"2024-03-03","endDate":"2024-03-05","occupancy":2,"excludeAssignmentId":7}`

func TestHandle_BusyRoomIsNotAnError(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAssignment.Response{
		RoomID: 101, RoomName: "101", Capacity: 3,
		Start: domain.Date(2024, time.March, 3), End: domain.Date(2024, time.March, 5),
		Nights: 2, Occupancy: 2, Available: false,
		Conflicts: []checkAssignment.Conflict{{
			AssignmentID: 1, ReservationID: 10, Organization: "Alpha", Kind: domain.KindGuest,
			Start: domain.Date(2024, time.March, 1), End: domain.Date(2024, time.March, 4),
		}},
		PriceMode: domain.PriceModeComputed, TotalPrice: 100000, NightlyPrice: 50000,
	}}

	w := post(NewHandler(uc, logger.NewNop()), validBody)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got.ExcludeAssignmentID)
	assert.Equal(t, int64(7), *uc.got.ExcludeAssignmentID)

	var resp CheckAssignmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Alpha", resp.Conflicts[0].Organization)
	assert.Equal(t, "2024-03-04", resp.Conflicts[0].EndDate)
	require.NotNil(t, resp.Conflicts[0].ReservationID)
	assert.Equal(t, int64(10), *resp.Conflicts[0].ReservationID)
}

func TestHandle_InvalidInputMessage(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: occupancy must be between 1 and 20", checkAssignment.ErrInvalidInput)}

	w := post(NewHandler(uc, logger.NewNop()), validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, msgInvalidInput+": occupancy must be between 1 and 20", body.Error)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "bad json", body: `{"roomId":`, wantCode: http.StatusBadRequest},
		{name: "unknown field", body: `{"roomId":101,"organization":"Alpha"}`, wantCode: http.StatusBadRequest},
		{name: "bad date", body: `{"roomId":101,"startDate":"2024/03/03","endDate":"2024-03-05"}`, wantCode: http.StatusBadRequest},
		{name: "room not found", body: validBody, err: checkAssignment.ErrRoomNotFound, wantCode: http.StatusNotFound},
		{name: "catalog down", body: validBody, err: checkAssignment.ErrCatalogUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "internal", body: validBody, err: checkAssignment.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
