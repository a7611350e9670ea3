package facility

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "hourly_rate", "capacity", "active", "created_at", "updated_at"}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, hourly_rate, capacity, active, created_at, updated_at FROM facilities WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), "Main Hall", "50.00", 120, true, now, now))

	f, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Main Hall", f.Name)
	require.NotNil(t, f.HourlyRate)
	assert.True(t, decimal.NewFromInt(50).Equal(*f.HourlyRate))
	assert.True(t, f.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_FreeFacility(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM facilities").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(3), "Garden", nil, 40, true, now, now))

	f, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, f.HourlyRate)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM facilities").WillReturnRows(sqlmock.NewRows(columns))

	_, err = NewRepository(db).GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
