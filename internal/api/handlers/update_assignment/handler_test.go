package update_assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	updateAssignment "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/update_assignment"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeUseCase struct {
	got  *updateAssignment.Request
	resp *updateAssignment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateAssignment.Request) (*updateAssignment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func patch(uc *fakeUseCase, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/assignments/{assignmentId}", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/assignments/"+id, strings.NewReader(body)))
	return w
}

const extendBody = `{"endDate":"2024-03-06","clearOverride":true}`

func TestHandle_Updated(t *testing.T) {
	uc := &fakeUseCase{resp: &updateAssignment.Response{
		ID: 5, RoomID: 101, ReservationID: 10, Organization: "Alpha", Kind: domain.KindGuest,
		Start: domain.Date(2024, time.March, 1), End: domain.Date(2024, time.March, 6),
		Nights: 5, Occupancy: 2, PriceMode: domain.PriceModeComputed, TotalPrice: 250000, NightlyPrice: 50000,
	}}

	w := patch(uc, "5", extendBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), uc.got.ID)
	assert.Nil(t, uc.got.Start)
	require.NotNil(t, uc.got.End)
	assert.Equal(t, domain.Date(2024, time.March, 6), *uc.got.End)
	assert.True(t, uc.got.ClearOverride)

	var resp AssignmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "2024-03-06", resp.EndDate)
	assert.Equal(t, int64(250000), resp.TotalPrice)
}

func TestHandle_ConflictNamesRoomAndHolder(t *testing.T) {
	conflict := &availability.ConflictError{Conflicting: domain.Assignment{
		RoomID: 102, ReservationID: 11, Organization: "Beta", Kind: domain.KindGuest,
		Interval: domain.MustDateInterval(domain.Date(2024, time.March, 4), domain.Date(2024, time.March, 8)),
	}}
	uc := &fakeUseCase{err: fmt.Errorf("%w: %w", updateAssignment.ErrConflict, conflict)}

	w := patch(uc, "5", `{"roomId":102}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body.Error, "номер 102")
	assert.Contains(t, body.Error, "Beta")
	assert.Contains(t, body.Error, "2024-03-04")
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		body     string
		err      error
		wantCode int
	}{
		{name: "bad id", id: "abc", body: extendBody, wantCode: http.StatusBadRequest},
		{name: "zero id", id: "0", body: extendBody, wantCode: http.StatusBadRequest},
		{name: "bad json", id: "5", body: `{"endDate":`, wantCode: http.StatusBadRequest},
		{name: "bad date", id: "5", body: `{"endDate":"06.03.2024"}`, wantCode: http.StatusBadRequest},
		{name: "invalid input", id: "5", body: extendBody, err: updateAssignment.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "assignment not found", id: "5", body: extendBody, err: updateAssignment.ErrAssignmentNotFound, wantCode: http.StatusNotFound},
		{name: "room not found", id: "5", body: `{"roomId":999}`, err: updateAssignment.ErrRoomNotFound, wantCode: http.StatusNotFound},
		{name: "db conflict", id: "5", body: extendBody, err: updateAssignment.ErrConflict, wantCode: http.StatusConflict},
		{name: "catalog down", id: "5", body: extendBody, err: updateAssignment.ErrCatalogUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "internal", id: "5", body: extendBody, err: updateAssignment.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patch(&fakeUseCase{err: tt.err}, tt.id, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
