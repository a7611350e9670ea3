package get_availability_rules

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	ListRules(ctx context.Context, facilityID int64) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
