package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) Cancel(_ context.Context, id int64) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, Status: "cancelled"}, nil
}

func del(svc *fakeService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := del(&fakeService{}, "4")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)

	assert.Equal(t, http.StatusBadRequest, del(&fakeService{}, "0").Code)
	assert.Equal(t, http.StatusNotFound, del(&fakeService{err: reservations.ErrReservationNotFound}, "4").Code)
	assert.Equal(t, http.StatusInternalServerError, del(&fakeService{err: reservations.ErrInternal}, "4").Code)
}
