package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/api/middleware"
	"github.com/salonik/SLN-BookingService/internal/domain"
	salonService "github.com/salonik/SLN-BookingService/internal/service/salon"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID сотрудника"
	msgInvalidSchedule    = "некорректное расписание работы"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salon/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salon/working-hours - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var week domain.WeekSchedule
	if err := handlers.DecodeJSON(r, &week); err != nil {
		h.logger.Warn("PUT /salon/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateWorkingHours(r.Context(), week); err != nil {
		switch {
		case errors.Is(err, salonService.ErrInvalidSchedule):
			h.logger.Warn("PUT /salon/working-hours - Invalid schedule: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /salon/working-hours - Failed to update working hours: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salon/working-hours - Working hours updated successfully: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, week)
}
