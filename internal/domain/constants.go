package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Default scheduling policy values
const (
	DefaultSlotDuration = 30 * time.Minute
	DefaultLeadTime     = 2 * time.Hour

	DefaultOpenTime  types.TimeString = "09:00"
	DefaultCloseTime types.TimeString = "22:00"

	DefaultTimezone = "UTC"
)

// Formats
const (
	DateFormat        = "2006-01-02"
	SlotDisplayFormat = "15:04"
)

// DaysInWeek number of weekday rules per facility
const DaysInWeek = 7

// DefaultOperatingHours hours applied when a facility has no rule for the day
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{
		StartTime:   DefaultOpenTime,
		EndTime:     DefaultCloseTime,
		IsAvailable: true,
		IsDefault:   true,
	}
}
