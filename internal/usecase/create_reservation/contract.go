package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// ConflictChecker проверка пересечения с активными бронированиями
type ConflictChecker interface {
	HasConflict(ctx context.Context, facilityID int64, window domain.Interval, excludeID *int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ChangeNotifier получает уведомление после фиксации транзакции
type ChangeNotifier interface {
	ReservationChanged(ctx context.Context, eventType string, previous, current *domain.Reservation)
}

// MetricsRecorder фиксирует исход операций с бронированиями
type MetricsRecorder interface {
	RecordReservation(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
