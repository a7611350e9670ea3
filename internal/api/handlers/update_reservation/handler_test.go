package update_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	updateReservation "github.com/m04kA/SMC-VenueBooking/internal/usecase/update_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	req *updateReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &updateReservation.Response{Reservation: &domain.Reservation{ID: req.ID, Status: domain.StatusConfirmed}}, nil
}

func patch(uc *fakeUseCase, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations/{reservationId}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id, strings.NewReader(body)))
	return rec
}

func TestHandle_PassesPresenceOfFields(t *testing.T) {
	uc := &fakeUseCase{}

	rec := patch(uc, "5", `{"status": "confirmed", "notes": null, "endDateTime": "2026-10-19T13:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	req := uc.req
	assert.Equal(t, int64(5), req.ID)
	assert.True(t, req.Status.HasValue())
	assert.Equal(t, "confirmed", req.Status.Value)
	assert.True(t, req.Notes.IsSet())
	assert.False(t, req.Notes.HasValue())
	assert.True(t, req.EndDateTime.HasValue())
	assert.False(t, req.StartDateTime.IsSet())
	assert.False(t, req.CustomerName.IsSet())
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
	}{
		{name: "bad id", id: "x", body: `{}`},
		{name: "malformed body", id: "1", body: `{"status":`},
		{name: "bad email", id: "1", body: `{"customerEmail": "nope"}`},
		{name: "bad time", id: "1", body: `{"startDateTime": "10:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := patch(uc, tt.id, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{updateReservation.ErrReservationNotFound, http.StatusNotFound},
		{updateReservation.ErrFacilityNotFound, http.StatusNotFound},
		{updateReservation.ErrTimeSlotConflict, http.StatusConflict},
		{updateReservation.ErrInvalidTimeRange, http.StatusBadRequest},
		{updateReservation.ErrInvalidTransition, http.StatusBadRequest},
		{updateReservation.ErrInvalidInput, http.StatusBadRequest},
		{updateReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := patch(&fakeUseCase{err: tt.err}, "1", `{"notes": "x"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
