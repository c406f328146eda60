package domain

import "github.com/salonik/SLN-BookingService/pkg/types"

// Default working window used when a weekday has no configuration
const (
	DefaultOpenTime  types.TimeString = "09:00"
	DefaultCloseTime types.TimeString = "18:00"
)

// Slot and booking constants
const (
	// GridStepMinutes шаг сетки расписания на экране дня
	GridStepMinutes = 30

	// MinBookableGapMinutes минимальная длина свободного интервала,
	// который имеет смысл показывать для записи
	MinBookableGapMinutes = 30

	// MinAppointmentMinutes минимальная длительность записи
	MinAppointmentMinutes = 15
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DurationPolicy политика проверки длительности записи против канонической
// длительности услуги
type DurationPolicy string

const (
	// DurationPolicyLenient интервал любой длины допускается без проверки
	DurationPolicyLenient DurationPolicy = "lenient"
	// DurationPolicyStrict интервал обязан совпадать с длительностью услуги
	DurationPolicyStrict DurationPolicy = "strict"
)

// ActiveStatuses статусы записей, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
