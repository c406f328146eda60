package get_free_intervals

import (
	"time"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// Request модель запроса свободных интервалов на день
type Request struct {
	Date time.Time // Дата (без времени)

	// MinDurationMinutes минимальная длина интервала; 0 - дефолтные 30 минут
	MinDurationMinutes int
}

// FreeInterval свободный промежуток внутри рабочего дня
type FreeInterval struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response модель ответа со списком свободных интервалов
type Response struct {
	Date      time.Time
	Closed    bool // Салон закрыт в этот день
	Intervals []FreeInterval
}
