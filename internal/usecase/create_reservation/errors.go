package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало не раньше окончания
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrFacilityNotFound возвращается, когда площадка не найдена или неактивна
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrTimeSlotConflict возвращается, когда окно пересекается с активным бронированием
	ErrTimeSlotConflict = errors.New("time slot conflicts with an existing reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
