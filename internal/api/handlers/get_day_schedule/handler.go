package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/domain"
	getDayGrid "github.com/salonik/SLN-BookingService/internal/usecase/get_day_grid"
)

const (
	msgMissingDate  = "не указана дата"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные данные запроса"
)

type Handler struct {
	useCase GetDayGridUseCase
	logger  Logger
}

func NewHandler(useCase GetDayGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/day?date=2026-09-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/day - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/day - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayGrid.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDayGrid.ErrInvalidInput):
			h.logger.Warn("GET /schedule/day - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedule/day - Failed to build day grid: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/day - Day grid retrieved successfully: date=%s, slots=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
