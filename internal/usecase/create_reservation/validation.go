package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// validateRequest проверяет обязательные поля и возвращает окно бронирования
func validateRequest(req *Request) (domain.Interval, error) {
	if req.FacilityID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}

	required := []struct {
		name  string
		value string
	}{
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"eventTitle", req.EventTitle},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.Interval{}, fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if req.StartDateTime.IsZero() || req.EndDateTime.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: startDateTime and endDateTime are required", ErrInvalidInput)
	}

	window, err := domain.NewInterval(req.StartDateTime, req.EndDateTime)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			return domain.Interval{}, ErrInvalidTimeRange
		}
		return domain.Interval{}, err
	}

	return window, nil
}
