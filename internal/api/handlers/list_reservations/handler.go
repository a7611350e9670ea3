package list_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reservations/models"
)

const msgInvalidFacilityID = "invalid facilityId"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params (все опциональны): facilityId, startDate, endDate (YYYY-MM-DD, включительно), status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRequest{}

	if raw := query.Get("facilityId"); raw != "" {
		facilityID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || facilityID <= 0 {
			h.logger.Warn("GET /reservations - Invalid facility ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)
			return
		}
		req.FacilityID = &facilityID
	}
	if raw := query.Get("startDate"); raw != "" {
		req.StartDate = &raw
	}
	if raw := query.Get("endDate"); raw != "" {
		req.EndDate = &raw
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
