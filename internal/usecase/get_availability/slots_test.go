package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

var testDate = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.UTC)
}

func interval(fromH, fromM, toH, toM int) domain.Interval {
	return domain.Interval{Start: at(fromH, fromM), End: at(toH, toM)}
}

func hours(start, end string) domain.OperatingHours {
	return domain.OperatingHours{StartTime: types.TimeString(start), EndTime: types.TimeString(end), IsAvailable: true}
}

func dayBefore() time.Time {
	return testDate.Add(-24 * time.Hour)
}

func TestGenerateSlots_DefaultDay(t *testing.T) {
	slots := GenerateSlots(domain.DefaultOperatingHours(), testDate, time.UTC, nil, dayBefore(), DefaultSlotParams())

	require.Len(t, slots, 26)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 30), slots[0].End)
	assert.Equal(t, at(21, 30), slots[25].Start)
	assert.Equal(t, at(22, 0), slots[25].End)

	for i, s := range slots {
		assert.True(t, s.Available, "slot %d", i)
		assert.Equal(t, domain.SlotReasonNone, s.Reason)
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
	}
}

func TestGenerateSlots_BookedUsesHalfOpenOverlap(t *testing.T) {
	reserved := []domain.Interval{interval(10, 0, 11, 0)}

	slots := GenerateSlots(hours("09:00", "12:00"), testDate, time.UTC, reserved, dayBefore(), DefaultSlotParams())
	require.Len(t, slots, 6)

	want := []struct {
		start     time.Time
		available bool
		reason    domain.SlotReason
	}{
		{at(9, 0), true, domain.SlotReasonNone},
		{at(9, 30), true, domain.SlotReasonNone},
		{at(10, 0), false, domain.SlotReasonBooked},
		{at(10, 30), false, domain.SlotReasonBooked},
		{at(11, 0), true, domain.SlotReasonNone},
		{at(11, 30), true, domain.SlotReasonNone},
	}
	for i, w := range want {
		assert.Equal(t, w.start, slots[i].Start)
		assert.Equal(t, w.available, slots[i].Available, "slot %s", w.start.Format("15:04"))
		assert.Equal(t, w.reason, slots[i].Reason, "slot %s", w.start.Format("15:04"))
	}
}

func TestGenerateSlots_PartialOverlapBooksSlot(t *testing.T) {
	reserved := []domain.Interval{interval(11, 20, 11, 40)}

	slots := GenerateSlots(hours("11:00", "12:00"), testDate, time.UTC, reserved, dayBefore(), DefaultSlotParams())
	require.Len(t, slots, 2)
	assert.Equal(t, domain.SlotReasonBooked, slots[0].Reason)
	assert.Equal(t, domain.SlotReasonBooked, slots[1].Reason)
}

func TestGenerateSlots_TooSoon(t *testing.T) {
	now := at(10, 15)

	slots := GenerateSlots(hours("09:00", "14:00"), testDate, time.UTC, nil, now, DefaultSlotParams())
	require.Len(t, slots, 10)

	for _, s := range slots {
		if s.Start.Before(at(12, 15)) {
			assert.False(t, s.Available, "slot %s", s.Start.Format("15:04"))
			assert.Equal(t, domain.SlotReasonTooSoon, s.Reason)
		} else {
			assert.True(t, s.Available, "slot %s", s.Start.Format("15:04"))
		}
	}
}

func TestGenerateSlots_LeadTimeBoundaryIsAvailable(t *testing.T) {
	now := at(10, 0)

	slots := GenerateSlots(hours("12:00", "13:00"), testDate, time.UTC, nil, now, DefaultSlotParams())
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Available)
}

func TestGenerateSlots_BookedTakesPriorityOverTooSoon(t *testing.T) {
	reserved := []domain.Interval{interval(9, 0, 9, 30)}

	slots := GenerateSlots(hours("09:00", "10:00"), testDate, time.UTC, reserved, at(9, 0), DefaultSlotParams())
	require.Len(t, slots, 2)
	assert.Equal(t, domain.SlotReasonBooked, slots[0].Reason)
	assert.Equal(t, domain.SlotReasonTooSoon, slots[1].Reason)
}

func TestGenerateSlots_WindowEdges(t *testing.T) {
	tests := []struct {
		name  string
		hours domain.OperatingHours
		want  int
	}{
		{name: "shorter than one slot", hours: hours("09:00", "09:20"), want: 0},
		{name: "exactly one slot", hours: hours("09:00", "09:30"), want: 1},
		{name: "partial tail dropped", hours: hours("09:00", "10:15"), want: 2},
		{name: "unaligned open", hours: hours("09:10", "10:10"), want: 2},
		{name: "until midnight", hours: hours("23:00", "24:00"), want: 2},
		{name: "closed day", hours: domain.OperatingHours{StartTime: "09:00", EndTime: "22:00"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.hours, testDate, time.UTC, nil, dayBefore(), DefaultSlotParams())
			assert.Len(t, slots, tt.want)
			for _, s := range slots {
				assert.False(t, s.End.After(tt.hours.EndTime.On(testDate, time.UTC)))
			}
		})
	}
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	slots := GenerateSlots(hours("09:00", "10:00"), testDate, time.UTC, nil, dayBefore(), SlotParams{})
	assert.Empty(t, slots)
}

func TestGenerateSlots_IsDeterministic(t *testing.T) {
	reserved := []domain.Interval{interval(13, 0, 15, 30)}
	now := at(8, 0)

	first := GenerateSlots(domain.DefaultOperatingHours(), testDate, time.UTC, reserved, now, DefaultSlotParams())
	second := GenerateSlots(domain.DefaultOperatingHours(), testDate, time.UTC, reserved, now, DefaultSlotParams())
	assert.Equal(t, first, second)
}

func TestToSlots_DisplayInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, loc)

	slots := toSlots(GenerateSlots(hours("09:00", "10:00"), date, loc, nil, date.Add(-time.Hour), DefaultSlotParams()), loc)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartDisplay)
	assert.Equal(t, "09:30", slots[0].EndDisplay)
	assert.Equal(t, "10:00", slots[1].EndDisplay)
	assert.Equal(t, 6, slots[0].Start.UTC().Hour())
}

func TestDayWindow(t *testing.T) {
	w := dayWindow(time.Date(2026, 10, 19, 15, 45, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), w.End)
}
