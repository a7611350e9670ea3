package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations/models"
	updateReservation "github.com/m04kA/SMC-VenueBooking/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidTimeRange     = "start time must be before end time"
	msgInvalidTransition    = "cancelled reservation cannot be reactivated"
	msgNotFound             = "reservation not found"
	msgFacilityNotFound     = "facility not found"
	msgTimeSlotConflict     = "time slot conflicts with an existing reservation"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrFacilityNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Facility not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, updateReservation.ErrTimeSlotConflict):
			h.logger.Warn("PATCH /reservations/{id} - Time slot conflict: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgTimeSlotConflict)

		case errors.Is(err, updateReservation.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /reservations/{id} - Invalid time range: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateReservation.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id} - Invalid transition: reservation_id=%d, %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(result.Reservation))
}
