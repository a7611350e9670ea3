package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	reservationRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items      map[int64]*domain.Reservation
	err        error
	lastFilter domain.ReservationFilter
	updates    int
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Reservation, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	f.updates++
	r.Status = status
	copied := *r
	return &copied, nil
}

type notification struct {
	eventType string
	previous  *domain.Reservation
	current   *domain.Reservation
}

type fakeNotifier struct {
	calls []notification
}

func (f *fakeNotifier) ReservationChanged(_ context.Context, eventType string, previous, current *domain.Reservation) {
	f.calls = append(f.calls, notification{eventType, previous, current})
}

func sampleReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	start := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(100)
	return &domain.Reservation{
		ID:            id,
		FacilityID:    1,
		CustomerName:  "Ann",
		CustomerEmail: "ann@example.com",
		EventTitle:    "Party",
		StartDateTime: start,
		EndDateTime:   start.Add(2 * time.Hour),
		Status:        status,
		TotalHours:    decimal.NewFromInt(2),
		TotalCost:     &cost,
	}
}

func newTestService(repo *fakeRepo, notifier *fakeNotifier) *Service {
	return NewService(repo, notifier, nil, time.UTC, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Reservation{7: sampleReservation(7, domain.StatusPending)}}
	svc := newTestService(repo, &fakeNotifier{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-10-19T10:00:00Z", resp.StartDateTime)
	require.NotNil(t, resp.TotalCost)
	assert.Equal(t, "100.00", *resp.TotalCost)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	svc := newTestService(&fakeRepo{err: errors.New("db down")}, &fakeNotifier{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Reservation{1: sampleReservation(1, domain.StatusConfirmed)}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, events.EventReservationCancelled, notifier.calls[0].eventType)
	assert.Equal(t, domain.StatusConfirmed, notifier.calls[0].previous.Status)
	assert.Equal(t, domain.StatusCancelled, notifier.calls[0].current.Status)
}

func TestService_Cancel_IsIdempotent(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Reservation{1: sampleReservation(1, domain.StatusCancelled)}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Zero(t, repo.updates)
	assert.Empty(t, notifier.calls)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{items: map[int64]*domain.Reservation{}}, &fakeNotifier{})

	_, err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_List_BuildsFilter(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Reservation{1: sampleReservation(1, domain.StatusPending)}}
	svc := newTestService(repo, &fakeNotifier{})

	resp, err := svc.List(context.Background(), &models.ListRequest{
		FacilityID: ptr.Ptr(int64(1)),
		StartDate:  ptr.Ptr("2026-10-01"),
		EndDate:    ptr.Ptr("2026-10-31"),
		Status:     ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	f := repo.lastFilter
	require.NotNil(t, f.FacilityID)
	assert.Equal(t, int64(1), *f.FacilityID)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *f.StartFrom)
	assert.True(t, f.StartTo.Before(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.StartTo.After(time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)))
	require.NotNil(t, f.Status)
	assert.Equal(t, domain.StatusPending, *f.Status)
}

func TestService_List_InvalidInput(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeNotifier{})

	tests := []struct {
		name string
		req  *models.ListRequest
	}{
		{name: "bad start date", req: &models.ListRequest{StartDate: ptr.Ptr("01.10.2026")}},
		{name: "bad end date", req: &models.ListRequest{EndDate: ptr.Ptr("tomorrow")}},
		{name: "reversed range", req: &models.ListRequest{StartDate: ptr.Ptr("2026-10-31"), EndDate: ptr.Ptr("2026-10-01")}},
		{name: "unknown status", req: &models.ListRequest{Status: ptr.Ptr("archived")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
