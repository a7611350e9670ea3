package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
// Время в RFC3339: "2026-10-19T10:00:00Z"
type CreateReservationRequest struct {
	FacilityID       int64     `json:"facilityId" validate:"required,gt=0"`
	CustomerName     string    `json:"customerName" validate:"required"`
	CustomerEmail    string    `json:"customerEmail" validate:"required,email"`
	CustomerPhone    *string   `json:"customerPhone,omitempty"`
	EventTitle       string    `json:"eventTitle" validate:"required"`
	EventDescription *string   `json:"eventDescription,omitempty"`
	StartDateTime    time.Time `json:"startDateTime" validate:"required"`
	EndDateTime      time.Time `json:"endDateTime" validate:"required"`
	Notes            *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		FacilityID:       r.FacilityID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		StartDateTime:    r.StartDateTime,
		EndDateTime:      r.EndDateTime,
		Notes:            r.Notes,
	}
}
