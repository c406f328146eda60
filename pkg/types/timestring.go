package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается, когда строка времени не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format")

	// ErrOutOfRange возвращается, когда значение часов или минут вне допустимого диапазона
	ErrOutOfRange = errors.New("types: time value out of range")
)

// TimeString время внутри дня в формате "HH:MM"
// Хранится как строка, чтобы без преобразований ходить в БД (колонки TIME) и в JSON
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку формата "HH:MM" или "HH:MM:SS"
// Секунды, если присутствуют, игнорируются
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := parseHourMinute(s)
	if err != nil {
		return "", err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// NewTimeStringFromMinutes форматирует минуты от полуночи обратно в "HH:MM"
// Для значений вне [0, 1440) часы могут выйти за 23 - вызывающий обязан проверять границы
func NewTimeStringFromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// parseHourMinute разбирает "HH:MM[:SS]" на часы и минуты
func parseHourMinute(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return hour, minute, nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	hour, minute, err := parseHourMinute(string(t))
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= MinutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrOutOfRange, t, minutes)
	}

	return NewTimeStringFromMinutes(total), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат и диапазон значения
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Колонки TIME приходят как "HH:MM:SS", секунды отбрасываются
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}
