package create_appointment

import (
	"fmt"
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса до любых походов в БД
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return ErrMissingService
	}

	if err := validateClientSelection(req); err != nil {
		return err
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return ErrMissingTimes
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validateClientSelection проверяет, что выбран ровно один вариант клиента
func validateClientSelection(req *Request) error {
	selected := 0
	if req.ClientID != nil {
		selected++
	}
	if req.UnregisteredClientID != nil {
		selected++
	}
	if req.NewClient != nil {
		selected++
	}

	if selected == 0 {
		return ErrMissingClient
	}
	if selected > 1 {
		return fmt.Errorf("%w: exactly one client reference expected", ErrInvalidInput)
	}

	if req.NewClient != nil && req.NewClient.FullName == "" {
		return fmt.Errorf("%w: new client full name is required", ErrInvalidInput)
	}

	return nil
}

// validateInterval проверяет порядок и длительность интервала [start, end)
func validateInterval(startMin, endMin int) error {
	if startMin >= endMin {
		return ErrInvalidTimeOrder
	}

	if endMin-startMin < domain.MinAppointmentMinutes {
		return fmt.Errorf("%w: minimum duration is %d minutes", ErrTooShort, domain.MinAppointmentMinutes)
	}

	return nil
}

// validateDurationPolicy применяет политику проверки длительности
// В lenient-режиме несовпадение с канонической длительностью услуги допускается
func validateDurationPolicy(policy domain.DurationPolicy, startMin, endMin int, svc *domain.Service) error {
	if policy != domain.DurationPolicyStrict {
		return nil
	}

	if endMin-startMin != svc.DurationMinutes {
		return fmt.Errorf("%w: expected %d minutes for %q", ErrDurationMismatch, svc.DurationMinutes, svc.Name)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
