package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// ListRequest фильтры списка бронирований
// Даты в формате YYYY-MM-DD, обе границы включительно
type ListRequest struct {
	FacilityID *int64
	StartDate  *string
	EndDate    *string
	Status     *string
}

// ReservationResponse бронирование в ответах API
type ReservationResponse struct {
	ID               int64   `json:"id"`
	FacilityID       int64   `json:"facilityId"`
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    *string `json:"customerPhone,omitempty"`
	EventTitle       string  `json:"eventTitle"`
	EventDescription *string `json:"eventDescription,omitempty"`
	StartDateTime    string  `json:"startDateTime"`
	EndDateTime      string  `json:"endDateTime"`
	Status           string  `json:"status"`
	TotalHours       string  `json:"totalHours"`
	HourlyRate       *string `json:"hourlyRate,omitempty"`
	TotalCost        *string `json:"totalCost,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует бронирование в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:               r.ID,
		FacilityID:       r.FacilityID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		StartDateTime:    r.StartDateTime.Format(time.RFC3339),
		EndDateTime:      r.EndDateTime.Format(time.RFC3339),
		Status:           string(r.Status),
		TotalHours:       r.TotalHours.String(),
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}

	if r.HourlyRate != nil {
		rate := r.HourlyRate.StringFixed(domain.CostScale)
		resp.HourlyRate = &rate
	}
	if r.TotalCost != nil {
		cost := r.TotalCost.StringFixed(domain.CostScale)
		resp.TotalCost = &cost
	}

	return resp
}

// FromDomainReservationList конвертирует список бронирований в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}
