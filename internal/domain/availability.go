package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// AvailabilityRule operating hours of a facility on one weekday.
// At most one rule exists per (FacilityID, DayOfWeek).
type AvailabilityRule struct {
	ID          int64
	FacilityID  int64
	DayOfWeek   time.Weekday // 0 = Sunday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OperatingHours resolved opening window for a day
type OperatingHours struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	IsDefault   bool // no stored rule, system default applied
}

// Window returns the opening window on date in loc
func (h OperatingHours) Window(date time.Time, loc *time.Location) (open, close time.Time) {
	return h.StartTime.On(date, loc), h.EndTime.On(date, loc)
}
