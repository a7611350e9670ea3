package reservation

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func reservationRow(id int64, start, end time.Time, status string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, int64(1), "Ada Lovelace", "ada@example.com", nil, "Workshop", nil,
		start, end, status, "2", "50.00", "100.00", nil, now, now,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now()
	start := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (facility_id,customer_name,customer_email,customer_phone,event_title,event_description,start_date_time,end_date_time,status,total_hours,hourly_rate,total_cost,notes) VALUES")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	rate := decimal.NewFromInt(50)
	res, err := repo.Create(context.Background(), &domain.Reservation{
		FacilityID:    1,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		EventTitle:    "Workshop",
		StartDateTime: start,
		EndDateTime:   start.Add(2 * time.Hour),
		Status:        domain.StatusPending,
		TotalHours:    decimal.NewFromInt(2),
		HourlyRate:    &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"})

	_, err := repo.Create(context.Background(), &domain.Reservation{FacilityID: 1, Status: domain.StatusPending})
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestRepository_Create_OtherError(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Reservation{FacilityID: 1})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrOverlap)
}

func TestRepository_FindActive_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	start := time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE facility_id = $1 AND start_date_time < $2 AND end_date_time > $3 AND status IN ($4,$5) AND id <> $6 ORDER BY start_date_time ASC, id ASC FOR UPDATE")).
		WithArgs(int64(1), end, start, "pending", "confirmed", int64(99)).
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow(reservationRow(7, start.Add(-time.Hour), start.Add(time.Hour), "confirmed")...))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	window := domain.Interval{Start: start, End: end}
	found, err := repo.FindActive(ctx, 1, &window, ptr.Ptr(int64(99)))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.StatusConfirmed, found[0].Status)
	require.NotNil(t, found[0].TotalCost)
	assert.True(t, decimal.NewFromInt(100).Equal(*found[0].TotalCost))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActive_NoLockOutsideTransaction(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`FROM reservations WHERE facility_id = \$1 AND status IN \(\$2,\$3\) ORDER BY start_date_time ASC, id ASC$`).
		WillReturnRows(sqlmock.NewRows(reservationColumns))

	found, err := repo.FindActive(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Filters(t *testing.T) {
	repo, _, mock := newRepo(t)
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)
	status := domain.StatusCancelled

	mock.ExpectQuery(regexp.QuoteMeta("WHERE facility_id = $1 AND start_date_time >= $2 AND start_date_time <= $3 AND status = $4 ORDER BY")).
		WithArgs(int64(2), from, to, "cancelled").
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow(reservationRow(5, from.Add(time.Hour), from.Add(2*time.Hour), "cancelled")...))

	found, err := repo.List(context.Background(), domain.ReservationFilter{
		FacilityID: ptr.Ptr(int64(2)),
		StartFrom:  &from,
		StartTo:    &to,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.StatusCancelled, found[0].Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`FROM reservations WHERE id = \$1$`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(reservationColumns))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)
	start := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id")).
			WithArgs("cancelled", int64(5)).
			WillReturnRows(sqlmock.NewRows(reservationColumns).
				AddRow(reservationRow(5, start, start.Add(time.Hour), "cancelled")...))
	}

	for i := 0; i < 2; i++ {
		res, err := repo.UpdateStatus(context.Background(), 5, domain.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, res.Status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("UPDATE reservations").WillReturnRows(sqlmock.NewRows(reservationColumns))

	_, err := repo.UpdateStatus(context.Background(), 404, domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_Update_SerializationFailure(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("UPDATE reservations SET customer_name").
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Update(context.Background(), &domain.Reservation{ID: 5, Status: domain.StatusPending})
	assert.ErrorIs(t, err, ErrOverlap)
}
