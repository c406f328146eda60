package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	getMonthAvailability "github.com/salonik/SLN-BookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц"
	msgInvalidInput = "некорректные данные запроса"
)

// MonthAvailabilityResponse карта "дата → есть ли свободный слот"
type MonthAvailabilityResponse struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Availability map[string]bool `json:"availability"`
}

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/month?year=2026&month=9
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		h.logger.Warn("GET /schedule/month - Invalid year: %s", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /schedule/month - Invalid month: %s", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /schedule/month - Invalid input: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedule/month - Failed to get month availability: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/month - Month availability retrieved successfully: year=%d, month=%d",
		year, month)
	handlers.RespondJSON(w, http.StatusOK, &MonthAvailabilityResponse{
		Year:         result.Year,
		Month:        int(result.Month),
		Availability: result.Availability,
	})
}
