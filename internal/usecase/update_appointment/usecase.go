package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
	apptRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/appointment"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
	serviceRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/service"
	"github.com/salonik/SLN-BookingService/pkg/types"
)

// UseCase use case переноса записи
// Перенос - одно обновление строки на месте, а не удаление со вставкой:
// при падении на любом шаге запись остаётся в исходном состоянии
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	salonRepo       SalonRepository
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	durationPolicy  domain.DurationPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	salonRepo SalonRepository,
	notifier Notifier,
	txManager TransactionManager,
	durationPolicy domain.DurationPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		salonRepo:       salonRepo,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		durationPolicy:  durationPolicy,
		logger:          logger,
	}
}

// Execute выполняет перенос записи
// Сама переносимая запись исключается из набора конфликтов - запись
// всегда может остаться на своём месте или сдвинуться внутри своего слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: staff=%d, appointment=%d", req.StaffID, req.AppointmentID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.CanBeRescheduled() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d in status %s cannot be rescheduled",
				appt.ID, appt.Status)
			return ErrCannotReschedule
		}

		// Собираем целевое состояние из запроса поверх текущего
		target, err := uc.applyChanges(txCtx, appt, req, now)
		if err != nil {
			return err
		}

		// Конфликты считаем по свежим записям дня, исключая саму запись
		existing, err := uc.appointmentRepo.GetByDate(txCtx, domain.DayAppointmentsFilter{
			Date:      target.AppointmentDate,
			ExcludeID: &appt.ID,
		})
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get day appointments: %v", err)
			return fmt.Errorf("%w: failed to get day appointments: %v", ErrInternal, err)
		}

		conflicts, err := domain.Overlapping(target.StartTime, target.EndTime, existing)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			first := conflicts[0]
			uc.logger.Warn("UpdateAppointment: slot %s-%s conflicts with appointment id=%d",
				target.StartTime, target.EndTime, first.ID)
			return &ConflictError{Conflicts: conflicts}
		}

		if err := uc.appointmentRepo.UpdateSchedule(txCtx, target); err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateAppointment: slot %s-%s lost the race to a concurrent booking",
					target.StartTime, target.EndTime)
				return &ConflictError{}
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = target
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully rescheduled appointment id=%d to %s %s-%s",
		result.ID, result.AppointmentDate.Format(domain.DateFormat), result.StartTime, result.EndTime)

	if result.HasRegisteredClient() {
		if err := uc.notifier.AppointmentRescheduled(ctx, result); err != nil {
			uc.logger.Warn("UpdateAppointment: notification failed for appointment id=%d: %v", result.ID, err)
		}
	}

	return toResponse(result), nil
}

// applyChanges строит целевое состояние записи и валидирует его
func (uc *UseCase) applyChanges(ctx context.Context, appt *domain.Appointment, req *Request, now time.Time) (*domain.Appointment, error) {
	target := *appt

	if req.Date != nil {
		target.AppointmentDate = *req.Date
	}

	if isDateInPast(target.AppointmentDate, now) {
		uc.logger.Warn("UpdateAppointment: target date %s is in the past",
			target.AppointmentDate.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Смена услуги: перечитываем прайс и денормализованные поля
	svcChanged := false
	svcDuration := 0
	if req.ServiceID != nil && *req.ServiceID != appt.ServiceID {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		target.ServiceID = svc.ID
		target.ServiceName = svc.Name
		target.ServicePrice = svc.Price
		svcChanged = true
		svcDuration = svc.DurationMinutes
	}

	if req.StartTime != nil {
		if req.StartTime.IsZero() {
			return nil, ErrMissingTimes
		}
		if err := req.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		target.StartTime = *req.StartTime
	}

	switch {
	case req.EndTime != nil:
		if err := req.EndTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		target.EndTime = *req.EndTime
	case req.StartTime != nil || svcChanged:
		// Конец не задан явно - пересчитываем от новой опоры,
		// сохраняя прежнюю длительность либо длительность новой услуги
		duration := intervalMinutes(appt.StartTime, appt.EndTime)
		if svcChanged {
			duration = svcDuration
		}
		end, err := domain.ComputeEndTime(target.StartTime, duration)
		if err != nil {
			if errors.Is(err, domain.ErrCrossesMidnight) {
				return nil, ErrCrossesMidnight
			}
			return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}
		target.EndTime = end
	}

	if req.Notes != nil {
		target.Notes = req.Notes
	}

	startMin, err := target.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endMin, err := target.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if startMin >= endMin {
		return nil, ErrInvalidTimeOrder
	}
	if endMin-startMin < domain.MinAppointmentMinutes {
		return nil, fmt.Errorf("%w: minimum duration is %d minutes", ErrTooShort, domain.MinAppointmentMinutes)
	}

	if uc.durationPolicy == domain.DurationPolicyStrict {
		duration := svcDuration
		if !svcChanged {
			svc, err := uc.serviceRepo.GetByID(ctx, target.ServiceID)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
			}
			duration = svc.DurationMinutes
		}
		if endMin-startMin != duration {
			return nil, fmt.Errorf("%w: expected %d minutes", ErrDurationMismatch, duration)
		}
	}

	// Рабочие часы на целевую дату
	week, err := uc.salonRepo.GetWorkingHours(ctx)
	if err != nil && !errors.Is(err, salonRepo.ErrSettingsNotFound) {
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	day := domain.ResolveWorkingHours(target.AppointmentDate, week)
	if day.Closed {
		uc.logger.Warn("UpdateAppointment: salon is closed on %s",
			target.AppointmentDate.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	return &target, nil
}

func intervalMinutes(start, end types.TimeString) int {
	s, err := start.Minutes()
	if err != nil {
		return 0
	}
	e, err := end.Minutes()
	if err != nil {
		return 0
	}
	return e - s
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:                   appt.ID,
		ClientID:             appt.ClientID,
		UnregisteredClientID: appt.UnregisteredClientID,
		ServiceID:            appt.ServiceID,
		AppointmentDate:      appt.AppointmentDate,
		StartTime:            appt.StartTime,
		EndTime:              appt.EndTime,
		Status:               string(appt.Status),
		ClientName:           appt.ClientName,
		ServiceName:          appt.ServiceName,
		ServicePrice:         appt.ServicePrice,
		Notes:                appt.Notes,
		CreatedAt:            appt.CreatedAt,
		UpdatedAt:            appt.UpdatedAt,
	}
}
