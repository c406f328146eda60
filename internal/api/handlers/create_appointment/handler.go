package create_appointment

import (
	"errors"
	"net/http"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/api/middleware"
	createAppointment "github.com/salonik/SLN-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID сотрудника"
	msgMissingService     = "не выбрана услуга"
	msgMissingClient      = "не выбран клиент"
	msgMissingTimes       = "не указано время начала"
	msgInvalidTimeOrder   = "время начала должно быть раньше времени конца"
	msgTooShort           = "запись короче минимальной длительности"
	msgDurationMismatch   = "длительность интервала не совпадает с длительностью услуги"
	msgCrossesMidnight    = "запись не может пересекать полночь"
	msgInvalidDateValue   = "некорректная дата записи"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга отключена в прайсе"
	msgClientNotFound     = "клиент не найден"
	msgClientCreateFailed = "не удалось завести нового клиента"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgSlotConflict       = "выбранное время пересекается с существующей записью"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт слота отдаем с деталями пересечения
		var conflictErr *createAppointment.ConflictError
		if errors.As(err, &conflictErr) {
			h.logger.Warn("POST /appointments - Slot conflict: staff_id=%d, date=%s, start=%s",
				staffID, req.AppointmentDate, req.StartTime)
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgSlotConflict, conflictErr))
			return
		}

		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: staff_id=%d, date=%s", staffID, req.AppointmentDate)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrMissingService):
			h.logger.Warn("POST /appointments - Missing service: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgMissingService)

		case errors.Is(err, createAppointment.ErrMissingClient):
			h.logger.Warn("POST /appointments - Missing client: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgMissingClient)

		case errors.Is(err, createAppointment.ErrMissingTimes):
			h.logger.Warn("POST /appointments - Missing start time: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgMissingTimes)

		case errors.Is(err, createAppointment.ErrInvalidTimeOrder):
			h.logger.Warn("POST /appointments - Invalid time order: staff_id=%d, start=%s, end=%s",
				staffID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeOrder)

		case errors.Is(err, createAppointment.ErrTooShort):
			h.logger.Warn("POST /appointments - Appointment too short: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgTooShort)

		case errors.Is(err, createAppointment.ErrDurationMismatch):
			h.logger.Warn("POST /appointments - Duration mismatch: staff_id=%d, service_id=%d",
				staffID, req.ServiceID)
			handlers.RespondBadRequest(w, msgDurationMismatch)

		case errors.Is(err, createAppointment.ErrCrossesMidnight):
			h.logger.Warn("POST /appointments - Crosses midnight: staff_id=%d, start=%s", staffID, req.StartTime)
			handlers.RespondBadRequest(w, msgCrossesMidnight)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: staff_id=%d, date=%s", staffID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrClientCreateFailed):
			h.logger.Error("POST /appointments - Failed to create client: staff_id=%d, error=%v", staffID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgClientCreateFailed)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, staff_id=%d, date=%s",
		result.ID, staffID, req.AppointmentDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
