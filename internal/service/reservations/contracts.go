package reservations

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error)
}

// ChangeNotifier получает уведомления об изменениях бронирований после записи
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
