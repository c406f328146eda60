package update_appointment

import (
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда переносимая запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrCannotReschedule возвращается, когда запись в статусе,
	// не допускающем перенос
	ErrCannotReschedule = errors.New("update_appointment: appointment cannot be rescheduled")

	// ErrMissingTimes возвращается, когда не указано время записи
	ErrMissingTimes = errors.New("update_appointment: start time is required")

	// ErrInvalidTimeOrder возвращается, когда начало не раньше конца
	ErrInvalidTimeOrder = errors.New("update_appointment: start time must be before end time")

	// ErrTooShort возвращается, когда запись короче минимальной длительности
	ErrTooShort = errors.New("update_appointment: appointment is too short")

	// ErrDurationMismatch возвращается в strict-режиме при несовпадении
	// длительности интервала с длительностью услуги
	ErrDurationMismatch = errors.New("update_appointment: interval does not match service duration")

	// ErrCrossesMidnight возвращается, когда запись пересекает полночь
	ErrCrossesMidnight = errors.New("update_appointment: appointment crosses midnight")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("update_appointment: invalid appointment date")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrSalonClosed возвращается, когда салон закрыт в выбранную дату
	ErrSalonClosed = errors.New("update_appointment: salon is closed on this date")

	// ErrSlotConflict возвращается, когда новый интервал пересекается с другой записью
	ErrSlotConflict = errors.New("update_appointment: time slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)

// ConflictError несет детали конфликтующих записей для показа пользователю
type ConflictError struct {
	Conflicts []*domain.Appointment
}

// Error реализует error
func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrSlotConflict.Error()
	}
	first := e.Conflicts[0]
	return fmt.Sprintf("%v: %s %s-%s (%s)",
		ErrSlotConflict, first.ClientName, first.StartTime, first.EndTime, first.ServiceName)
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
