package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		RoomID int64 `json:"roomId"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"roomId": 101}`},
		{name: "unknown field", body: `{"roomId": 101, "foo": 1}`, wantErr: true},
		{name: "trailing object", body: `{"roomId": 101}{"roomId": 102}`, wantErr: true},
		{name: "malformed", body: `{"roomId": `, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(101), p.RoomID)
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondConflict(w, "номер занят")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "номер занят", body.Error)
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), msgInternalError)
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	v, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "-1"})
	_, err = PathInt64(r, "id")
	assert.Error(t, err)

	_, err = PathInt64(httptest.NewRequest(http.MethodGet, "/", nil), "id")
	assert.Error(t, err)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?floor=3&bad=x", nil)

	floor, err := QueryInt(r, "floor")
	require.NoError(t, err)
	require.NotNil(t, floor)
	assert.Equal(t, 3, *floor)

	missing, err := QueryInt(r, "other")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryInt64(r, "bad")
	assert.Error(t, err)
}

func TestInputErrorMessage(t *testing.T) {
	errInvalid := errors.New("create_assignment: invalid input data")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "bare sentinel", err: errInvalid, want: "bad"},
		{name: "plain detail", err: fmt.Errorf("%w: roomID must be positive", errInvalid), want: "bad: roomID must be positive"},
		{name: "nested package prefix", err: fmt.Errorf("%w: %v", errInvalid, domain.ErrInvalidInterval), want: "bad: interval end must be after start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InputErrorMessage("bad", tt.err, errInvalid)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "create_assignment:")
		})
	}
}

func TestConflictMessage(t *testing.T) {
	interval := domain.MustDateInterval(domain.Date(2024, time.March, 1), domain.Date(2024, time.March, 4))

	guest := &availability.ConflictError{Conflicting: domain.Assignment{
		RoomID: 101, ReservationID: 10, Organization: "Alpha", Kind: domain.KindGuest, Interval: interval,
	}}
	msg := ConflictMessage("занято", fmt.Errorf("wrap: %w", guest))
	assert.Equal(t, "занято: номер 101, Alpha, [2024-03-01, 2024-03-04)", msg)

	block := &availability.ConflictError{Conflicting: domain.Assignment{
		RoomID: 102, Kind: domain.KindMaintenance, Interval: interval,
	}}
	assert.Contains(t, ConflictMessage("занято", block), "номер 102, обслуживание")

	assert.Equal(t, "занято", ConflictMessage("занято", errors.New("serialization failure")))
}
