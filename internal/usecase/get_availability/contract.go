package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// HoursResolver источник часов работы площадки по дню недели
type HoursResolver interface {
	Resolve(ctx context.Context, facilityID int64, day time.Weekday) (domain.OperatingHours, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// FindActive возвращает активные бронирования площадки, пересекающие окно
	FindActive(ctx context.Context, facilityID int64, window *domain.Interval, excludeID *int64) ([]*domain.Reservation, error)
}

// SnapshotCache кэш активных бронирований площадки на дату
type SnapshotCache interface {
	Get(ctx context.Context, facilityID int64, date string) ([]domain.Interval, bool, error)
	Set(ctx context.Context, facilityID int64, date string, reservations []*domain.Reservation) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
