package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ActiveStatuses statuses that take part in conflict checks
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed}

// ParseReservationStatus validates a raw status value
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch status := ReservationStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// IsActive returns true for pending and confirmed statuses
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether a reservation in status s may move to next.
// Nothing leaves cancelled; every other edit is trusted administrative input.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == StatusCancelled {
		return next == StatusCancelled
	}
	return true
}

// Reservation represents a booking of a facility for a time window
type Reservation struct {
	ID               int64
	FacilityID       int64
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    *string
	EventTitle       string
	EventDescription *string
	StartDateTime    time.Time
	EndDateTime      time.Time
	Status           ReservationStatus

	// Derived from the window and the facility rate at pricing time
	TotalHours decimal.Decimal
	HourlyRate *decimal.Decimal
	TotalCost  *decimal.Decimal

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the reservation window
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartDateTime, End: r.EndDateTime}
}

// IsActive returns true if the reservation counts toward conflicts
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// ApplyPricing copies derived cost fields onto the reservation
func (r *Reservation) ApplyPricing(p Pricing) {
	r.TotalHours = p.TotalHours
	r.HourlyRate = p.HourlyRate
	r.TotalCost = p.TotalCost
}

// ReservationFilter filter for reservation queries
type ReservationFilter struct {
	FacilityID *int64             // Restrict to one facility
	Overlaps   *Interval          // Only reservations overlapping this window
	StartFrom  *time.Time         // start_date_time >= StartFrom
	StartTo    *time.Time         // start_date_time <= StartTo
	Status     *ReservationStatus // Exact status
	ActiveOnly bool               // Only pending and confirmed
	ExcludeID  *int64             // Skip this reservation (self on update)
}
