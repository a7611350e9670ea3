package dispatch

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
)

// SnapshotInvalidator сбрасывает кэш снимков бронирований
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, facilityID int64, dates ...string) error
}

// EventPublisher публикует события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// MetricsRecorder фиксирует результат публикации
type MetricsRecorder interface {
	RecordEvent(event string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher выполняет побочные действия после фиксации изменений бронирования:
// сбрасывает кэш затронутых дней и публикует событие.
// Ошибки только логируются: запрос к этому моменту уже выполнен.
type Dispatcher struct {
	cache     SnapshotInvalidator
	publisher EventPublisher
	metrics   MetricsRecorder
	loc       *time.Location
	logger    Logger
	now       func() time.Time
}

// NewDispatcher создает диспетчер; metrics может быть nil
func NewDispatcher(
	cache SnapshotInvalidator,
	publisher EventPublisher,
	metrics MetricsRecorder,
	loc *time.Location,
	logger Logger,
) *Dispatcher {
	return &Dispatcher{
		cache:     cache,
		publisher: publisher,
		metrics:   metrics,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// ReservationChanged сообщает об изменении бронирования
// previous может быть nil (создание)
// Изменение уже зафиксировано, поэтому отмена запроса клиентом не должна прерывать сброс кэша и публикацию
func (d *Dispatcher) ReservationChanged(ctx context.Context, eventType string, previous, current *domain.Reservation) {
	ctx = context.WithoutCancel(ctx)

	dates := AffectedDates(d.loc, previous, current)
	if err := d.cache.Invalidate(ctx, current.FacilityID, dates...); err != nil {
		d.logger.Warn("ReservationChanged: failed to invalidate snapshots facility=%d dates=%v: %v",
			current.FacilityID, dates, err)
	}

	event := events.NewReservationEvent(eventType, current, d.now())
	err := d.publisher.Publish(ctx, event)
	if d.metrics != nil {
		d.metrics.RecordEvent(eventType, err)
	}
	if err != nil {
		d.logger.Error("ReservationChanged: failed to publish %s for reservation id=%d: %v", eventType, current.ID, err)
		return
	}

	d.logger.Info("ReservationChanged: published %s for reservation id=%d", eventType, current.ID)
}

// AffectedDates календарные даты (YYYY-MM-DD в loc), которые пересекают окна бронирований
func AffectedDates(loc *time.Location, reservations ...*domain.Reservation) []string {
	seen := make(map[string]struct{})

	for _, r := range reservations {
		if r == nil || !r.StartDateTime.Before(r.EndDateTime) {
			continue
		}

		start := r.StartDateTime.In(loc)
		last := r.EndDateTime.Add(-time.Nanosecond).In(loc)

		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, loc)
		for !day.After(lastDay) {
			seen[day.Format(domain.DateFormat)] = struct{}{}
			day = day.AddDate(0, 0, 1)
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
