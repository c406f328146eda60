package domain

import (
	"strings"
	"time"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// DaySchedule рабочее окно одного дня
// При Closed = true значения Start/End игнорируются всеми расчётами
type DaySchedule struct {
	Start  types.TimeString `json:"start"`
	End    types.TimeString `json:"end"`
	Closed bool             `json:"closed"`
}

// WeekSchedule расписание салона, ключ - английское название дня недели в нижнем регистре
// Хранится одной JSONB-колонкой в таблице salon_settings
type WeekSchedule map[string]DaySchedule

// WeekdayKey returns the lowercase weekday key for a date ("monday".."sunday")
func WeekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// DefaultDaySchedule returns the fallback open window used when a weekday
// has no configured schedule. The salon deliberately fails open (09:00-18:00)
// rather than closed on missing configuration.
func DefaultDaySchedule() DaySchedule {
	return DaySchedule{
		Start:  DefaultOpenTime,
		End:    DefaultCloseTime,
		Closed: false,
	}
}

// ResolveWorkingHours returns the working window for a date.
// Missing weekday entries resolve to the default open window.
func ResolveWorkingHours(date time.Time, week WeekSchedule) DaySchedule {
	if week == nil {
		return DefaultDaySchedule()
	}

	day, ok := week[WeekdayKey(date)]
	if !ok {
		return DefaultDaySchedule()
	}

	// Пустые времена в конфиге трактуем как отсутствие настройки
	if !day.Closed && (day.Start.IsZero() || day.End.IsZero()) {
		return DefaultDaySchedule()
	}

	return day
}

// Validate проверяет корректность расписания на неделю
func (w WeekSchedule) Validate() error {
	for key, day := range w {
		if !validWeekdayKeys[key] {
			return ErrUnknownWeekday
		}
		if day.Closed {
			continue
		}
		if err := day.Start.Validate(); err != nil {
			return err
		}
		if err := day.End.Validate(); err != nil {
			return err
		}
		if !day.Start.IsBefore(day.End) {
			return ErrInvalidDayWindow
		}
	}
	return nil
}

var validWeekdayKeys = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}
