package get_free_intervals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/domain"
	getFreeIntervals "github.com/salonik/SLN-BookingService/internal/usecase/get_free_intervals"
)

const (
	msgMissingDate        = "не указана дата"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMinDuration = "некорректная минимальная длительность"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase GetFreeIntervalsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeIntervalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/free-intervals?date=2026-09-15&minDuration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/free-intervals - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/free-intervals - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	minDuration := 0
	if minDurationStr := r.URL.Query().Get("minDuration"); minDurationStr != "" {
		minDuration, err = strconv.Atoi(minDurationStr)
		if err != nil || minDuration < 0 {
			h.logger.Warn("GET /schedule/free-intervals - Invalid minDuration: %s", minDurationStr)
			handlers.RespondBadRequest(w, msgInvalidMinDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeIntervals.Request{
		Date:               date,
		MinDurationMinutes: minDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeIntervals.ErrInvalidInput):
			h.logger.Warn("GET /schedule/free-intervals - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedule/free-intervals - Failed to get free intervals: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/free-intervals - Free intervals retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
