package get_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// GenerateSlots строит сетку слотов на день
//
// Слоты идут от открытия с шагом params.SlotDuration; слот попадает в сетку,
// только если он целиком заканчивается не позже закрытия. Неполный хвост отбрасывается.
// Для каждого слота:
//   - booked: пересекается хотя бы с одним из reserved (полуоткрытые интервалы)
//   - too_soon: начинается раньше now + params.LeadTime
//
// Если подходят обе причины, указывается booked.
//
// Примеры (слот 11:30-12:00):
//   - бронирование 11:20-11:40 → booked
//   - бронирование 11:00-11:30 → свободен (граничат)
//   - бронирование 12:00-12:30 → свободен (граничат)
func GenerateSlots(
	hours domain.OperatingHours,
	date time.Time,
	loc *time.Location,
	reserved []domain.Interval,
	now time.Time,
	params SlotParams,
) []domain.TimeSlot {
	if !hours.IsAvailable || params.SlotDuration <= 0 {
		return []domain.TimeSlot{}
	}

	open, closing := hours.Window(date, loc)
	earliest := now.Add(params.LeadTime)

	slots := make([]domain.TimeSlot, 0)
	for start := open; !start.Add(params.SlotDuration).After(closing); start = start.Add(params.SlotDuration) {
		slot := domain.TimeSlot{
			Start:     start,
			End:       start.Add(params.SlotDuration),
			Available: true,
		}

		switch {
		case isBooked(slot.Interval(), reserved):
			slot.Available = false
			slot.Reason = domain.SlotReasonBooked
		case slot.Start.Before(earliest):
			slot.Available = false
			slot.Reason = domain.SlotReasonTooSoon
		}

		slots = append(slots, slot)
	}

	return slots
}

func isBooked(slot domain.Interval, reserved []domain.Interval) bool {
	for _, r := range reserved {
		if slot.Overlaps(r) {
			return true
		}
	}
	return false
}

// toSlots добавляет к слотам отображаемое время в локации loc
func toSlots(slots []domain.TimeSlot, loc *time.Location) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			Start:        s.Start,
			End:          s.End,
			StartDisplay: s.Start.In(loc).Format(domain.SlotDisplayFormat),
			EndDisplay:   s.End.In(loc).Format(domain.SlotDisplayFormat),
			Available:    s.Available,
			Reason:       s.Reason,
		}
	}
	return result
}

// dayWindow возвращает сутки [00:00, следующие 00:00) даты date в локации loc
func dayWindow(date time.Time, loc *time.Location) domain.Interval {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return domain.Interval{Start: start, End: start.AddDate(0, 0, 1)}
}
