package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало не раньше окончания
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrInvalidTransition возвращается при попытке вернуть отмененное бронирование
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrFacilityNotFound возвращается, когда площадка бронирования не найдена
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrTimeSlotConflict возвращается, когда новое окно пересекается с активным бронированием
	ErrTimeSlotConflict = errors.New("time slot conflicts with an existing reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
