package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"facility_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"event_title",
	"event_description",
	"start_date_time",
	"end_date_time",
	"status",
	"total_hours",
	"hourly_rate",
	"total_cost",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение exclusion constraint возвращается как ErrOverlap.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"facility_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"event_title",
			"event_description",
			"start_date_time",
			"end_date_time",
			"status",
			"total_hours",
			"hourly_rate",
			"total_cost",
			"notes",
		).
		Values(
			res.FacilityID,
			res.CustomerName,
			res.CustomerEmail,
			res.CustomerPhone,
			res.EventTitle,
			res.EventDescription,
			res.StartDateTime,
			res.EndDateTime,
			string(res.Status),
			res.TotalHours,
			nullDecimal(res.HourlyRate),
			nullDecimal(res.TotalCost),
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, wrapDBError(ErrExecQuery, "Create - execute insert", err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, wrapDBError(ErrScanRow, "GetByID - scan reservation", err)
	}

	return res, nil
}

// FindActive получает активные (pending, confirmed) бронирования площадки,
// пересекающиеся с окном window, исключая excludeID.
// Внутри транзакции найденные строки блокируются (FOR UPDATE): это
// авторитетное чтение для проверки конфликтов перед записью.
func (r *Repository) FindActive(ctx context.Context, facilityID int64, window *domain.Interval, excludeID *int64) ([]*domain.Reservation, error) {
	filter := domain.ReservationFilter{
		FacilityID: &facilityID,
		Overlaps:   window,
		ActiveOnly: true,
		ExcludeID:  excludeID,
	}

	return r.find(ctx, "FindActive", filter, dbmetrics.IsInTransaction(ctx))
}

// List получает бронирования по фильтру, упорядоченные по времени начала
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return r.find(ctx, "List", filter, false)
}

// Update сохраняет изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("customer_name", res.CustomerName).
		Set("customer_email", res.CustomerEmail).
		Set("customer_phone", res.CustomerPhone).
		Set("event_title", res.EventTitle).
		Set("event_description", res.EventDescription).
		Set("start_date_time", res.StartDateTime).
		Set("end_date_time", res.EndDateTime).
		Set("status", string(res.Status)).
		Set("total_hours", res.TotalHours).
		Set("hourly_rate", nullDecimal(res.HourlyRate)).
		Set("total_cost", nullDecimal(res.TotalCost)).
		Set("notes", res.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, wrapDBError(ErrExecQuery, "Update - execute update", err)
	}

	return res, nil
}

// UpdateStatus выставляет статус и возвращает обновленное бронирование
// Повторная установка того же статуса не является ошибкой
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(reservationColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, wrapDBError(ErrExecQuery, "UpdateStatus - execute update", err)
	}

	return res, nil
}

func (r *Repository) find(ctx context.Context, op string, filter domain.ReservationFilter, lock bool) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_date_time ASC", "id ASC")

	if filter.FacilityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"facility_id": *filter.FacilityID})
	}

	// Полуоткрытые интервалы: касание границ не считается пересечением
	if filter.Overlaps != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_date_time": filter.Overlaps.End}).
			Where(squirrel.Gt{"end_date_time": filter.Overlaps.Start})
	}

	if filter.StartFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_date_time": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date_time": *filter.StartTo})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)})
	}

	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(ErrExecQuery, op+" - execute query", err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(ErrScanRow, op+" - rows error", err)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res        domain.Reservation
		status     string
		hourlyRate decimal.NullDecimal
		totalCost  decimal.NullDecimal
	)

	err := row.Scan(
		&res.ID,
		&res.FacilityID,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.EventTitle,
		&res.EventDescription,
		&res.StartDateTime,
		&res.EndDateTime,
		&status,
		&res.TotalHours,
		&hourlyRate,
		&totalCost,
		&res.Notes,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Status = domain.ReservationStatus(status)
	if hourlyRate.Valid {
		res.HourlyRate = &hourlyRate.Decimal
	}
	if totalCost.Valid {
		res.TotalCost = &totalCost.Decimal
	}

	return &res, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
