package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req *models.ListRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{}}, nil
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ParsesFilters(t *testing.T) {
	svc := &fakeService{}

	rec := get(svc, "/api/v1/reservations?facilityId=2&startDate=2026-10-01&endDate=2026-10-31&status=pending")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.req.FacilityID)
	assert.Equal(t, int64(2), *svc.req.FacilityID)
	assert.Equal(t, "2026-10-01", *svc.req.StartDate)
	assert.Equal(t, "2026-10-31", *svc.req.EndDate)
	assert.Equal(t, "pending", *svc.req.Status)
	assert.JSONEq(t, `{"reservations": [], "total": 0}`, rec.Body.String())
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}

	rec := get(svc, "/api/v1/reservations")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.req.FacilityID)
	assert.Nil(t, svc.req.Status)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/api/v1/reservations?facilityId=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{err: reservations.ErrInvalidInput}, "/api/v1/reservations?status=x").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeService{err: reservations.ErrInternal}, "/api/v1/reservations").Code)
}
