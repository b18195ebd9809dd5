package delete_assignment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
)

type fakeService struct {
	deleted []int64
	err     error
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func del(svc *fakeService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/assignments/{assignmentId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/assignments/"+id, nil))
	return w
}

func TestHandle_NoContent(t *testing.T) {
	svc := &fakeService{}

	w := del(svc, "42")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, []int64{42}, svc.deleted)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		err      error
		wantCode int
	}{
		{name: "bad id", id: "x", wantCode: http.StatusBadRequest},
		{name: "not found", id: "42", err: assignments.ErrAssignmentNotFound, wantCode: http.StatusNotFound},
		{name: "invalid input", id: "42", err: assignments.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", id: "42", err: errors.New("conn reset"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			assert.Equal(t, tt.wantCode, del(svc, tt.id).Code)
			assert.Empty(t, svc.deleted)
		})
	}
}
