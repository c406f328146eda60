package get_day_schedule

import (
	"github.com/salonik/SLN-BookingService/internal/domain"
	getDayGrid "github.com/salonik/SLN-BookingService/internal/usecase/get_day_grid"
)

// SlotAppointment данные записи в ячейке сетки
type SlotAppointment struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
}

// Slot ячейка 30-минутной сетки дня
type Slot struct {
	Time        string           `json:"time"`
	State       string           `json:"state"` // free | start | continuation
	Appointment *SlotAppointment `json:"appointment,omitempty"`
	Anomalous   bool             `json:"anomalous,omitempty"`
	Occupants   []SlotAppointment `json:"occupants,omitempty"`
}

// DayScheduleResponse HTTP response с сеткой дня
type DayScheduleResponse struct {
	Date   string `json:"date"`
	Closed bool   `json:"closed"`
	Slots  []Slot `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayGrid.Response) *DayScheduleResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slot := Slot{
			Time:      s.Time.String(),
			State:     s.State,
			Anomalous: s.Anomalous,
		}

		if s.Appointment != nil {
			appt := fromSlotAppointment(*s.Appointment)
			slot.Appointment = &appt
		}

		if s.Anomalous {
			slot.Occupants = make([]SlotAppointment, len(s.Occupants))
			for j, occ := range s.Occupants {
				slot.Occupants[j] = fromSlotAppointment(occ)
			}
		}

		slots[i] = slot
	}

	return &DayScheduleResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Closed: resp.Closed,
		Slots:  slots,
	}
}

func fromSlotAppointment(appt getDayGrid.SlotAppointment) SlotAppointment {
	return SlotAppointment{
		ID:          appt.ID,
		ClientName:  appt.ClientName,
		ServiceName: appt.ServiceName,
		StartTime:   appt.StartTime.String(),
		EndTime:     appt.EndTime.String(),
		Status:      appt.Status,
	}
}
