package update_availability_rule

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	UpsertRule(ctx context.Context, req *models.UpsertRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
