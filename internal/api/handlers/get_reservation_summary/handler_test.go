package get_reservation_summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments/models"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeService struct {
	summary *models.ReservationSummary
	err     error
}

func (f fakeService) GetReservationSummary(_ context.Context, _ int64) (*models.ReservationSummary, error) {
	return f.summary, f.err
}

func get(svc fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/summary", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id+"/summary", nil))
	return w
}

func TestHandle_Summary(t *testing.T) {
	svc := fakeService{summary: &models.ReservationSummary{
		ReservationID: 10,
		Organization:  "Alpha",
		Lines: []models.SummaryLine{{
			AssignmentResponse: models.AssignmentResponse{
				ID: 1, RoomID: 101, Kind: string(domain.KindGuest),
				StartDate: domain.Date(2024, time.March, 1), EndDate: domain.Date(2024, time.March, 4),
				Nights: 3, Occupancy: 2, PriceMode: string(domain.PriceModeComputed), TotalPrice: 150000, NightlyPrice: 50000,
			},
			RoomName: "101",
			Floor:    1,
		}},
		RoomCount:  1,
		RoomNights: 3,
		TotalPrice: 150000,
	}}

	w := get(svc, "10")

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReservationSummaryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Alpha", resp.Organization)
	assert.Equal(t, 3, resp.RoomNights)
	assert.False(t, resp.CatalogFailed)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, int64(1), resp.Lines[0].AssignmentID)
	assert.Equal(t, "2024-03-04", resp.Lines[0].EndDate)
}

func TestHandle_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(fakeService{}, "ten").Code)
	assert.Equal(t, http.StatusNotFound, get(fakeService{err: assignments.ErrReservationNotFound}, "10").Code)
	assert.Equal(t, http.StatusBadRequest, get(fakeService{err: assignments.ErrInvalidInput}, "10").Code)
	assert.Equal(t, http.StatusInternalServerError, get(fakeService{err: errors.New("conn reset")}, "10").Code)
}
