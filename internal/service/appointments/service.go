package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
	apptRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/appointment"
	"github.com/salonik/SLN-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями (просмотр, история, отмена)
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	logger          Logger
}

// New создает новый сервис записей
func New(appointmentRepo AppointmentRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID возвращает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
		}
		s.logger.Error("[GetByID] failed to get appointment %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments возвращает историю записей клиента
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if err := validateClientRef(req.ClientID, req.UnregisteredClientID); err != nil {
		return nil, err
	}

	var status *domain.AppointmentStatus
	if req.Status != nil {
		st, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		status = &st
	}

	appts, err := s.appointmentRepo.GetByClient(ctx, req.ClientID, req.UnregisteredClientID, status)
	if err != nil {
		s.logger.Error("[GetClientAppointments] failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись и отправляет уведомление клиенту
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
		}
		s.logger.Error("[Cancel] failed to get appointment %d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		return fmt.Errorf("%w: appointment %d has status %s", ErrCannotCancel, id, appt.Status)
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
		}
		s.logger.Error("[Cancel] failed to cancel appointment %d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Cancel] appointment %d cancelled by staff %d", id, req.StaffID)

	// Уведомление не должно блокировать отмену
	if appt.HasRegisteredClient() {
		if err := s.notifier.AppointmentCancelled(ctx, appt, req.Reason); err != nil {
			s.logger.Warn("[Cancel] failed to notify client about cancellation of appointment %d: %v", id, err)
		}
	}

	return nil
}

func validateClientRef(clientID, unregisteredClientID *int64) error {
	if clientID == nil && unregisteredClientID == nil {
		return fmt.Errorf("%w: client reference is required", ErrInvalidInput)
	}
	if clientID != nil && unregisteredClientID != nil {
		return fmt.Errorf("%w: only one client reference must be set", ErrInvalidInput)
	}
	if clientID != nil && *clientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if unregisteredClientID != nil && *unregisteredClientID <= 0 {
		return fmt.Errorf("%w: unregistered client id must be positive", ErrInvalidInput)
	}
	return nil
}
