package get_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Facility         FacilityResponse       `json:"facility"`
	Date             string                 `json:"date"`
	DayOfWeek        int                    `json:"dayOfWeek"`
	Available        bool                   `json:"available"`
	OperatingHours   OperatingHoursResponse `json:"operatingHours"`
	Slots            []SlotResponse         `json:"slots"`
	ExistingBookings int                    `json:"existingBookings"`
	Message          string                 `json:"message,omitempty"`
}

// FacilityResponse краткие данные площадки
type FacilityResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	HourlyRate *string `json:"hourlyRate,omitempty"`
	Capacity   int     `json:"capacity"`
}

// OperatingHoursResponse часы работы на день
type OperatingHoursResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsDefault bool   `json:"isDefault"`
}

// SlotResponse слот сетки
type SlotResponse struct {
	Start     string `json:"start"`     // RFC3339
	End       string `json:"end"`       // RFC3339
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "09:30"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // booked | too_soon
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Facility: FacilityResponse{
			ID:       resp.Facility.ID,
			Name:     resp.Facility.Name,
			Capacity: resp.Facility.Capacity,
		},
		Date:      resp.Date.Format(domain.DateFormat),
		DayOfWeek: int(resp.DayOfWeek),
		Available: resp.Available,
		OperatingHours: OperatingHoursResponse{
			StartTime: resp.OperatingHours.StartTime.String(),
			EndTime:   resp.OperatingHours.EndTime.String(),
			IsDefault: resp.OperatingHours.IsDefault,
		},
		Slots:            make([]SlotResponse, 0, len(resp.Slots)),
		ExistingBookings: resp.ExistingReservations,
		Message:          resp.Message,
	}

	if resp.Facility.HourlyRate != nil {
		rate := resp.Facility.HourlyRate.StringFixed(domain.CostScale)
		out.Facility.HourlyRate = &rate
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start:     s.Start.Format(time.RFC3339),
			End:       s.End.Format(time.RFC3339),
			StartTime: s.StartDisplay,
			EndTime:   s.EndDisplay,
			Available: s.Available,
			Reason:    string(s.Reason),
		})
	}

	return out
}
