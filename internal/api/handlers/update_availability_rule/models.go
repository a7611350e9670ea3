package update_availability_rule

import "github.com/m04kA/SMC-VenueBooking/internal/service/availability/models"

// UpdateRuleRequest HTTP request model
// Для закрытого дня (isAvailable=false) время можно не указывать
type UpdateRuleRequest struct {
	StartTime   string `json:"startTime" validate:"required_if=IsAvailable true"`
	EndTime     string `json:"endTime" validate:"required_if=IsAvailable true"`
	IsAvailable bool   `json:"isAvailable"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRuleRequest) ToServiceRequest(facilityID int64, dayOfWeek int) *models.UpsertRuleRequest {
	return &models.UpsertRuleRequest{
		FacilityID:  facilityID,
		DayOfWeek:   dayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: r.IsAvailable,
	}
}
