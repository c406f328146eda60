package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
	apptRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/client"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
	serviceRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/service"
	accountsClient "github.com/salonik/SLN-BookingService/internal/integrations/accounts"
)

// UseCase use case создания записи: валидация, разрешение клиента,
// проверка конфликтов и сохранение - затем best-effort уведомление
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	serviceRepo     ServiceRepository
	salonRepo       SalonRepository
	accounts        AccountsClient
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	durationPolicy  domain.DurationPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	salonRepo SalonRepository,
	accounts AccountsClient,
	notifier Notifier,
	txManager TransactionManager,
	durationPolicy domain.DurationPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		serviceRepo:     serviceRepo,
		salonRepo:       salonRepo,
		accounts:        accounts,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		durationPolicy:  durationPolicy,
		logger:          logger,
	}
}

// Execute выполняет создание записи
// Проверка конфликтов и вставка идут в одной сериализуемой транзакции
// с блокировкой записей дня - две конкурентные брони на пересекающиеся
// интервалы не пройдут обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: staff=%d, service=%d, date=%s, start=%s",
		req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Получаем услугу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Вычисляем конец интервала
	endTime := req.EndTime
	if endTime.IsZero() {
		endTime, err = domain.ComputeEndTime(req.StartTime, svc.DurationMinutes)
		if err != nil {
			if errors.Is(err, domain.ErrCrossesMidnight) {
				uc.logger.Warn("CreateAppointment: %s + %d min crosses midnight", req.StartTime, svc.DurationMinutes)
				return nil, ErrCrossesMidnight
			}
			return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}
	}

	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endMin, err := endTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateInterval(startMin, endMin); err != nil {
		uc.logger.Warn("CreateAppointment: interval validation failed: %v", err)
		return nil, err
	}

	if err := validateDurationPolicy(uc.durationPolicy, startMin, endMin, svc); err != nil {
		uc.logger.Warn("CreateAppointment: duration policy violation: %v", err)
		return nil, err
	}

	// 4. Рабочие часы на дату
	week, err := uc.salonRepo.GetWorkingHours(ctx)
	if err != nil && !errors.Is(err, salonRepo.ErrSettingsNotFound) {
		uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	day := domain.ResolveWorkingHours(req.Date, week)
	if day.Closed {
		uc.logger.Warn("CreateAppointment: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	// Запись вне рабочего окна допускается (переработка мастера), но заметна в логах
	if req.StartTime.IsBefore(day.Start) || endTime.IsAfter(day.End) {
		uc.logger.Warn("CreateAppointment: interval %s-%s is outside working hours %s-%s",
			req.StartTime, endTime, day.Start, day.End)
	}

	// 5. Разрешаем клиента. Заведение walk-in клиента обязано успеть
	// до бронирования: падение здесь прерывает весь сценарий
	clientID, unregisteredID, clientName, err := uc.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	// 6. Проверка конфликтов + вставка в сериализуемой транзакции
	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.GetByDate(txCtx, domain.DayAppointmentsFilter{Date: req.Date})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get day appointments: %v", err)
			return fmt.Errorf("%w: failed to get day appointments: %v", ErrInternal, err)
		}

		conflicts, err := domain.Overlapping(req.StartTime, endTime, existing)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			first := conflicts[0]
			uc.logger.Warn("CreateAppointment: slot %s-%s conflicts with appointment id=%d (%s-%s)",
				req.StartTime, endTime, first.ID, first.StartTime, first.EndTime)
			return &ConflictError{Conflicts: conflicts}
		}

		appt := &domain.Appointment{
			ClientID:             clientID,
			UnregisteredClientID: unregisteredID,
			ServiceID:            svc.ID,
			AppointmentDate:      req.Date,
			StartTime:            req.StartTime,
			EndTime:              endTime,
			Status:               domain.StatusConfirmed,
			ClientName:           clientName,
			ServiceName:          svc.Name,
			ServicePrice:         svc.Price,
			Notes:                req.Notes,
			CreatedBy:            req.StaffID,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Exclusion constraint сработал между проверкой и вставкой
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s-%s lost the race to a concurrent booking", req.StartTime, endTime)
				return &ConflictError{}
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 7. Уведомление клиента: best-effort, не входит в границу консистентности брони
	if result.HasRegisteredClient() {
		if err := uc.notifier.AppointmentCreated(ctx, result); err != nil {
			uc.logger.Warn("CreateAppointment: notification failed for appointment id=%d: %v", result.ID, err)
		}
	}

	return toResponse(result), nil
}

// resolveClient возвращает ссылку на клиента и имя для отображения
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (clientID *int64, unregisteredID *int64, name string, err error) {
	switch {
	case req.ClientID != nil:
		account, err := uc.accounts.GetClientWithGracefulDegradation(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, accountsClient.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: registered client id=%d not found", *req.ClientID)
				return nil, nil, "", ErrClientNotFound
			}
			if errors.Is(err, accountsClient.ErrServiceDegraded) && req.ClientName != "" {
				uc.logger.Warn("CreateAppointment: accounts degraded, using provided name for client id=%d", *req.ClientID)
				return req.ClientID, nil, req.ClientName, nil
			}
			uc.logger.Error("CreateAppointment: failed to resolve client id=%d: %v", *req.ClientID, err)
			return nil, nil, "", fmt.Errorf("%w: failed to resolve client: %v", ErrInternal, err)
		}
		return req.ClientID, nil, account.FullName, nil

	case req.UnregisteredClientID != nil:
		c, err := uc.clientRepo.GetByID(ctx, *req.UnregisteredClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: unregistered client id=%d not found", *req.UnregisteredClientID)
				return nil, nil, "", ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get unregistered client id=%d: %v", *req.UnregisteredClientID, err)
			return nil, nil, "", fmt.Errorf("%w: failed to get unregistered client: %v", ErrInternal, err)
		}
		return nil, req.UnregisteredClientID, c.FullName, nil

	default:
		created, err := uc.clientRepo.Create(ctx, &domain.UnregisteredClient{
			FullName:  req.NewClient.FullName,
			Phone:     req.NewClient.Phone,
			Email:     req.NewClient.Email,
			CreatedBy: req.StaffID,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create unregistered client: %v", err)
			return nil, nil, "", fmt.Errorf("%w: %v", ErrClientCreateFailed, err)
		}
		uc.logger.Info("CreateAppointment: created unregistered client id=%d", created.ID)
		return nil, &created.ID, created.FullName, nil
	}
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
