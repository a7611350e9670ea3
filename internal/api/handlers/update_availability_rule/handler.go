package update_availability_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/service/availability"
)

const (
	msgInvalidFacilityID  = "invalid facility id"
	msgInvalidDayOfWeek   = "dayOfWeek must be between 0 (Sunday) and 6 (Saturday)"
	msgInvalidRequestBody = "invalid request body"
	msgFacilityNotFound   = "facility not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/facilities/{facilityId}/availability-rules/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		h.logger.Warn("PUT /facilities/{id}/availability-rules/{day} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil || dayOfWeek < 0 || dayOfWeek > 6 {
		h.logger.Warn("PUT /facilities/{id}/availability-rules/{day} - Invalid day of week: %q", vars["dayOfWeek"])
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id}/availability-rules/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PUT /facilities/{id}/availability-rules/{day} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	rule, err := h.service.UpsertRule(r.Context(), req.ToServiceRequest(facilityID, dayOfWeek))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrFacilityNotFound):
			h.logger.Warn("PUT /facilities/{id}/availability-rules/{day} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{id}/availability-rules/{day} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /facilities/{id}/availability-rules/{day} - Failed to save rule: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id}/availability-rules/{day} - Rule saved: facility_id=%d, day=%d", facilityID, dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
