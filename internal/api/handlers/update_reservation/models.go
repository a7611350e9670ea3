package update_reservation

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-VenueBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-VenueBooking/pkg/optional"
)

// UpdateReservationRequest HTTP request model (PATCH)
// Отсутствующее поле не меняется, null очищает необязательное поле
type UpdateReservationRequest struct {
	CustomerName     optional.Field[string]    `json:"customerName"`
	CustomerEmail    optional.Field[string]    `json:"customerEmail"`
	CustomerPhone    optional.Field[string]    `json:"customerPhone"`
	EventTitle       optional.Field[string]    `json:"eventTitle"`
	EventDescription optional.Field[string]    `json:"eventDescription"`
	StartDateTime    optional.Field[time.Time] `json:"startDateTime"`
	EndDateTime      optional.Field[time.Time] `json:"endDateTime"`
	Status           optional.Field[string]    `json:"status"`
	Notes            optional.Field[string]    `json:"notes"`
}

// Validate проверяет формат email, если он передан
func (r *UpdateReservationRequest) Validate() error {
	if r.CustomerEmail.HasValue() {
		if err := handlers.ValidateVar(r.CustomerEmail.Value, "required,email"); err != nil {
			return errors.New("invalid fields: customerEmail (email)")
		}
	}
	return nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) *updateReservation.Request {
	return &updateReservation.Request{
		ID:               id,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		StartDateTime:    r.StartDateTime,
		EndDateTime:      r.EndDateTime,
		Status:           r.Status,
		Notes:            r.Notes,
	}
}
