package events

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Типы событий бронирования
const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent событие жизненного цикла бронирования
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservationId"`
	FacilityID    int64     `json:"facilityId"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customerEmail"`
	EventTitle    string    `json:"eventTitle"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	TotalCost     *string   `json:"totalCost,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewReservationEvent строит событие из бронирования
func NewReservationEvent(eventType string, r *domain.Reservation, at time.Time) ReservationEvent {
	ev := ReservationEvent{
		Type:          eventType,
		ReservationID: r.ID,
		FacilityID:    r.FacilityID,
		Status:        string(r.Status),
		CustomerEmail: r.CustomerEmail,
		EventTitle:    r.EventTitle,
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
		OccurredAt:    at.UTC(),
	}
	if r.TotalCost != nil {
		cost := r.TotalCost.StringFixed(domain.CostScale)
		ev.TotalCost = &cost
	}
	return ev
}
