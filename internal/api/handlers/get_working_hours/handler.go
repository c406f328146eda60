package get_working_hours

import (
	"net/http"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/salon/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	week, err := h.service.GetWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /salon/working-hours - Failed to get working hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salon/working-hours - Working hours retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, week)
}
