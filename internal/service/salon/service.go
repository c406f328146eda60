package salon

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
)

// Service сервис настроек салона (график работы)
type Service struct {
	salonRepo SalonRepository
	logger    Logger
}

// New создает новый сервис настроек салона
func New(salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		logger:    logger,
	}
}

// GetWorkingHours возвращает недельный график работы салона
// Если настройки не заведены, возвращается график по умолчанию для всех дней
func (s *Service) GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error) {
	week, err := s.salonRepo.GetWorkingHours(ctx)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSettingsNotFound) {
			s.logger.Warn("[GetWorkingHours] salon settings not found, using default schedule")
			return defaultWeekSchedule(), nil
		}
		s.logger.Error("[GetWorkingHours] failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Незаполненные дни достраиваем графиком по умолчанию
	for _, key := range weekdayKeys {
		if _, ok := week[key]; !ok {
			week[key] = domain.DefaultDaySchedule()
		}
	}

	return week, nil
}

// UpdateWorkingHours валидирует и сохраняет недельный график работы
func (s *Service) UpdateWorkingHours(ctx context.Context, week domain.WeekSchedule) error {
	if len(week) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrInvalidSchedule)
	}

	if err := week.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := s.salonRepo.UpdateWorkingHours(ctx, week); err != nil {
		s.logger.Error("[UpdateWorkingHours] failed to update working hours: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[UpdateWorkingHours] working hours updated for %d days", len(week))
	return nil
}

var weekdayKeys = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func defaultWeekSchedule() domain.WeekSchedule {
	week := make(domain.WeekSchedule, len(weekdayKeys))
	for _, key := range weekdayKeys {
		week[key] = domain.DefaultDaySchedule()
	}
	return week
}
