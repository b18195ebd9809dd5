package get_rooms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeCatalog struct {
	floor *int
	rooms []domain.Room
	err   error
}

func (f *fakeCatalog) ListRooms(_ context.Context, floor *int) ([]domain.Room, error) {
	f.floor = floor
	return f.rooms, f.err
}

func get(svc *fakeCatalog, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_FloorFilter(t *testing.T) {
	svc := &fakeCatalog{rooms: []domain.Room{
		{ID: 201, Name: "201", Floor: 2, Type: domain.RoomTypeTwin, Capacity: 2, BasePrice: 40000},
	}}

	w := get(svc, "/api/v1/rooms?floor=2")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.floor)
	assert.Equal(t, 2, *svc.floor)

	var resp RoomsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "twin", resp.Rooms[0].Type)
	assert.Equal(t, int64(40000), resp.Rooms[0].BasePrice)
}

func TestHandle_NoFloorListsAll(t *testing.T) {
	svc := &fakeCatalog{}

	w := get(svc, "/api/v1/rooms")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.floor)
	assert.JSONEq(t, `{"rooms":[]}`, w.Body.String())
}

func TestHandle_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(&fakeCatalog{}, "/api/v1/rooms?floor=two").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeCatalog{err: catalog.ErrInvalidInput}, "/api/v1/rooms?floor=-1").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(&fakeCatalog{err: catalog.ErrCatalogUnavailable}, "/api/v1/rooms").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeCatalog{err: errors.New("decode")}, "/api/v1/rooms").Code)
}
