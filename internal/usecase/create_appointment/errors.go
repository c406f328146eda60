package create_appointment

import (
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

var (
	// ErrMissingService возвращается, когда услуга не выбрана
	ErrMissingService = errors.New("create_appointment: service is required")

	// ErrMissingClient возвращается, когда клиент не выбран
	ErrMissingClient = errors.New("create_appointment: client is required")

	// ErrMissingTimes возвращается, когда не указано время записи
	ErrMissingTimes = errors.New("create_appointment: start time is required")

	// ErrInvalidTimeOrder возвращается, когда начало не раньше конца
	ErrInvalidTimeOrder = errors.New("create_appointment: start time must be before end time")

	// ErrTooShort возвращается, когда запись короче минимальной длительности
	ErrTooShort = errors.New("create_appointment: appointment is too short")

	// ErrDurationMismatch возвращается в strict-режиме, когда длительность интервала
	// не совпадает с канонической длительностью услуги
	ErrDurationMismatch = errors.New("create_appointment: interval does not match service duration")

	// ErrCrossesMidnight возвращается, когда запись пересекает полночь
	ErrCrossesMidnight = errors.New("create_appointment: appointment crosses midnight")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга выключена в прайсе
	ErrServiceInactive = errors.New("create_appointment: service is not active")

	// ErrClientNotFound возвращается, когда выбранный клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrClientCreateFailed возвращается, когда не удалось завести walk-in клиента
	ErrClientCreateFailed = errors.New("create_appointment: failed to create unregistered client")

	// ErrSalonClosed возвращается, когда салон закрыт в выбранную дату
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующей записью
	ErrSlotConflict = errors.New("create_appointment: time slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ConflictError несет детали конфликтующих записей, чтобы показать
// пользователю с кем и во сколько пересеклись - слот никогда не
// подменяется молча
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
