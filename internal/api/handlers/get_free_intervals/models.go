package get_free_intervals

import (
	"github.com/salonik/SLN-BookingService/internal/domain"
	getFreeIntervals "github.com/salonik/SLN-BookingService/internal/usecase/get_free_intervals"
)

// FreeInterval свободный промежуток внутри рабочего дня
type FreeInterval struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FreeIntervalsResponse HTTP response со свободными интервалами
type FreeIntervalsResponse struct {
	Date      string         `json:"date"`
	Closed    bool           `json:"closed"`
	Intervals []FreeInterval `json:"intervals"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeIntervals.Response) *FreeIntervalsResponse {
	intervals := make([]FreeInterval, len(resp.Intervals))
	for i, interval := range resp.Intervals {
		intervals[i] = FreeInterval{
			StartTime: interval.StartTime.String(),
			EndTime:   interval.EndTime.String(),
		}
	}

	return &FreeIntervalsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Closed:    resp.Closed,
		Intervals: intervals,
	}
}
