package domain

import "errors"

var (
	// ErrCrossesMidnight возвращается, когда вычисленное время окончания
	// выходит за пределы суток
	ErrCrossesMidnight = errors.New("domain: appointment crosses midnight")

	// ErrUnknownWeekday возвращается при неизвестном ключе дня недели в расписании
	ErrUnknownWeekday = errors.New("domain: unknown weekday key")

	// ErrInvalidDayWindow возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidDayWindow = errors.New("domain: working day start must be before end")
)
