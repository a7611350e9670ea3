package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	req  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/facilities/{facilityId}/availability", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	rate := decimal.NewFromInt(50)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Facility:       &domain.Facility{ID: 3, Name: "Hall", HourlyRate: &rate, Capacity: 80, Active: true},
		Date:           date,
		DayOfWeek:      time.Monday,
		Available:      true,
		OperatingHours: domain.DefaultOperatingHours(),
		Slots: []getAvailability.Slot{{
			Start: date.Add(9 * time.Hour), End: date.Add(9*time.Hour + 30*time.Minute),
			StartDisplay: "09:00", EndDisplay: "09:30", Available: false, Reason: domain.SlotReasonBooked,
		}},
		ExistingReservations: 1,
	}}

	rec := serve(uc, "/api/v1/facilities/3/availability?date=2026-10-19")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(3), uc.req.FacilityID)
	assert.Equal(t, date, uc.req.Date)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-19", body.Date)
	assert.Equal(t, 1, body.DayOfWeek)
	assert.Equal(t, "50.00", *body.Facility.HourlyRate)
	assert.Equal(t, 1, body.ExistingBookings)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.Equal(t, "booked", body.Slots[0].Reason)
	assert.Equal(t, "2026-10-19T09:00:00Z", body.Slots[0].Start)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "bad facility id", target: "/api/v1/facilities/abc/availability?date=2026-10-19", want: http.StatusBadRequest},
		{name: "missing date", target: "/api/v1/facilities/1/availability", want: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/facilities/1/availability?date=19.10.2026", want: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/facilities/1/availability?date=2026-10-19", err: getAvailability.ErrFacilityNotFound, want: http.StatusNotFound},
		{name: "internal", target: "/api/v1/facilities/1/availability?date=2026-10-19", err: getAvailability.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
