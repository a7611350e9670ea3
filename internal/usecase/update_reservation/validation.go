package update_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/optional"
)

// applyText переносит заполненные текстовые поля запроса на бронирование
func applyText(req *Request, r *domain.Reservation) error {
	required := []struct {
		name  string
		field optional.Field[string]
		dst   *string
	}{
		{"customerName", req.CustomerName, &r.CustomerName},
		{"customerEmail", req.CustomerEmail, &r.CustomerEmail},
		{"eventTitle", req.EventTitle, &r.EventTitle},
	}
	for _, f := range required {
		if !f.field.IsSet() {
			continue
		}
		if !f.field.HasValue() || strings.TrimSpace(f.field.Value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, f.name)
		}
		*f.dst = f.field.Value
	}

	if req.CustomerPhone.IsSet() {
		r.CustomerPhone = req.CustomerPhone.Ptr()
	}
	if req.EventDescription.IsSet() {
		r.EventDescription = req.EventDescription.Ptr()
	}
	if req.Notes.IsSet() {
		r.Notes = req.Notes.Ptr()
	}

	return nil
}

// applyStatus проверяет и применяет новый статус
func applyStatus(req *Request, r *domain.Reservation) error {
	if !req.Status.IsSet() {
		return nil
	}
	if !req.Status.HasValue() {
		return fmt.Errorf("%w: status cannot be null", ErrInvalidInput)
	}

	next, ok := domain.ParseReservationStatus(req.Status.Value)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status.Value)
	}
	if !r.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, next)
	}

	r.Status = next
	return nil
}

// applyWindow собирает новое окно из переданных границ и текущих значений
func applyWindow(req *Request, r *domain.Reservation) (domain.Interval, error) {
	start, end := r.StartDateTime, r.EndDateTime

	if req.StartDateTime.IsSet() {
		if !req.StartDateTime.HasValue() || req.StartDateTime.Value.IsZero() {
			return domain.Interval{}, fmt.Errorf("%w: startDateTime cannot be empty", ErrInvalidInput)
		}
		start = req.StartDateTime.Value
	}
	if req.EndDateTime.IsSet() {
		if !req.EndDateTime.HasValue() || req.EndDateTime.Value.IsZero() {
			return domain.Interval{}, fmt.Errorf("%w: endDateTime cannot be empty", ErrInvalidInput)
		}
		end = req.EndDateTime.Value
	}

	window, err := domain.NewInterval(start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			return domain.Interval{}, ErrInvalidTimeRange
		}
		return domain.Interval{}, err
	}

	r.StartDateTime = window.Start
	r.EndDateTime = window.End
	return window, nil
}
