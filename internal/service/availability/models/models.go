package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UpsertRuleRequest запрос на установку правила для дня недели
type UpsertRuleRequest struct {
	FacilityID  int64
	DayOfWeek   int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

// RuleResponse правило дня недели (заданное или по умолчанию)
type RuleResponse struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsDefault   bool   `json:"isDefault"`
}

// RuleListResponse правила площадки на всю неделю
type RuleListResponse struct {
	FacilityID int64          `json:"facilityId"`
	Rules      []RuleResponse `json:"rules"`
}

// FromDomainRule конвертирует правило в DTO
func FromDomainRule(r *domain.AvailabilityRule) RuleResponse {
	return RuleResponse{
		DayOfWeek:   int(r.DayOfWeek),
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		IsAvailable: r.IsAvailable,
	}
}

// FromOperatingHours конвертирует часы работы дня в DTO
func FromOperatingHours(day time.Weekday, h domain.OperatingHours) RuleResponse {
	return RuleResponse{
		DayOfWeek:   int(day),
		StartTime:   h.StartTime.String(),
		EndTime:     h.EndTime.String(),
		IsAvailable: h.IsAvailable,
		IsDefault:   h.IsDefault,
	}
}
