package domain

import "time"

// SlotReason explains why a slot is unavailable
type SlotReason string

const (
	SlotReasonNone    SlotReason = ""
	SlotReasonBooked  SlotReason = "booked"
	SlotReasonTooSoon SlotReason = "too_soon"
)

// TimeSlot is a derived fixed-length booking window
type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Available bool
	Reason    SlotReason
}

// Interval returns the slot window
func (s TimeSlot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
