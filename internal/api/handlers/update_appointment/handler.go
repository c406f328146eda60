package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/api/middleware"
	updateAppointment "github.com/salonik/SLN-BookingService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты или времени"
	msgMissingUserID        = "отсутствует ID сотрудника"
	msgNotFound             = "запись не найдена"
	msgCannotReschedule     = "запись не может быть перенесена"
	msgInvalidTimeOrder     = "время начала должно быть раньше времени конца"
	msgTooShort             = "запись короче минимальной длительности"
	msgDurationMismatch     = "длительность интервала не совпадает с длительностью услуги"
	msgCrossesMidnight      = "запись не может пересекать полночь"
	msgInvalidDateValue     = "некорректная дата записи"
	msgServiceNotFound      = "услуга не найдена"
	msgSalonClosed          = "салон закрыт в выбранную дату"
	msgSlotConflict         = "выбранное время пересекается с существующей записью"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, staffID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *updateAppointment.ConflictError
		if errors.As(err, &conflictErr) {
			h.logger.Warn("PATCH /appointments/{id} - Slot conflict: appointment_id=%d, staff_id=%d",
				appointmentID, staffID)
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgSlotConflict, conflictErr))
			return
		}

		switch {
		case errors.Is(err, updateAppointment.ErrSlotConflict):
			h.logger.Warn("PATCH /appointments/{id} - Slot conflict: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{id} - Cannot reschedule: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, updateAppointment.ErrInvalidTimeOrder):
			h.logger.Warn("PATCH /appointments/{id} - Invalid time order: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidTimeOrder)

		case errors.Is(err, updateAppointment.ErrTooShort):
			h.logger.Warn("PATCH /appointments/{id} - Appointment too short: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgTooShort)

		case errors.Is(err, updateAppointment.ErrDurationMismatch):
			h.logger.Warn("PATCH /appointments/{id} - Duration mismatch: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgDurationMismatch)

		case errors.Is(err, updateAppointment.ErrCrossesMidnight):
			h.logger.Warn("PATCH /appointments/{id} - Crosses midnight: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgCrossesMidnight)

		case errors.Is(err, updateAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{id} - Invalid date: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrSalonClosed):
			h.logger.Warn("PATCH /appointments/{id} - Salon closed: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%d, staff_id=%d",
		appointmentID, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
