package update_availability_rule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/service/availability"
	"github.com/m04kA/SMC-VenueBooking/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req *models.UpsertRuleRequest
	err error
}

func (f *fakeService) UpsertRule(_ context.Context, req *models.UpsertRuleRequest) (*models.RuleResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RuleResponse{DayOfWeek: req.DayOfWeek, StartTime: req.StartTime, EndTime: req.EndTime, IsAvailable: req.IsAvailable}, nil
}

func put(svc *fakeService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/facilities/{facilityId}/availability-rules/{dayOfWeek}", NewHandler(svc, nopLogger{}).Handle).
		Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, strings.NewReader(body)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := put(svc, "/api/v1/facilities/1/availability-rules/6", `{"startTime": "10:00", "endTime": "18:00", "isAvailable": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.req.FacilityID)
	assert.Equal(t, 6, svc.req.DayOfWeek)
	assert.JSONEq(t, `{"dayOfWeek": 6, "startTime": "10:00", "endTime": "18:00", "isAvailable": true, "isDefault": false}`, rec.Body.String())
}

func TestHandle_ClosedDayWithoutTimes(t *testing.T) {
	svc := &fakeService{}

	rec := put(svc, "/api/v1/facilities/1/availability-rules/0", `{"isAvailable": false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		err  error
		want int
	}{
		{name: "day out of range", path: "/api/v1/facilities/1/availability-rules/7", body: `{"isAvailable": false}`, want: http.StatusBadRequest},
		{name: "open day without times", path: "/api/v1/facilities/1/availability-rules/1", body: `{"isAvailable": true}`, want: http.StatusBadRequest},
		{name: "service validation", path: "/api/v1/facilities/1/availability-rules/1", body: `{"startTime": "18:00", "endTime": "10:00", "isAvailable": true}`, err: availability.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "facility not found", path: "/api/v1/facilities/9/availability-rules/1", body: `{"isAvailable": false}`, err: availability.ErrFacilityNotFound, want: http.StatusNotFound},
		{name: "internal", path: "/api/v1/facilities/1/availability-rules/1", body: `{"isAvailable": false}`, err: availability.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeService{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
