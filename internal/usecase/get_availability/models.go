package get_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// MsgFacilityClosed сообщение для дня, когда площадка не работает
const MsgFacilityClosed = "Facility is not available on this day"

// Request модель запроса доступности
type Request struct {
	FacilityID int64     // ID площадки
	Date       time.Time // Календарная дата (время игнорируется)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	Facility             *domain.Facility
	Date                 time.Time    // Полночь запрошенной даты в настроенной локации
	DayOfWeek            time.Weekday // 0 = воскресенье
	Available            bool         // Работает ли площадка в этот день
	OperatingHours       domain.OperatingHours
	Slots                []Slot
	ExistingReservations int    // Количество активных бронирований, пересекающих день
	Message              string // Пояснение для закрытого дня
}

// Slot слот сетки с отображаемым временем
type Slot struct {
	Start        time.Time
	End          time.Time
	StartDisplay string // "15:04" в настроенной локации
	EndDisplay   string
	Available    bool
	Reason       domain.SlotReason
}

// SlotParams параметры генерации сетки
type SlotParams struct {
	SlotDuration time.Duration
	LeadTime     time.Duration
}

// DefaultSlotParams параметры по умолчанию: 30 минут, 2 часа
func DefaultSlotParams() SlotParams {
	return SlotParams{
		SlotDuration: domain.DefaultSlotDuration,
		LeadTime:     domain.DefaultLeadTime,
	}
}
