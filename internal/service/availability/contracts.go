package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	GetByFacilityAndDay(ctx context.Context, facilityID int64, day time.Weekday) (*domain.AvailabilityRule, error)
	ListByFacility(ctx context.Context, facilityID int64) ([]*domain.AvailabilityRule, error)
	Upsert(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
}

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
