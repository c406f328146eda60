package domain

import (
	"fmt"
	"sort"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// FreeInterval максимальный непрерывный свободный промежуток внутри рабочего дня
type FreeInterval struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DurationMinutes returns the interval length in minutes
func (f FreeInterval) DurationMinutes() int {
	start, err := f.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := f.EndTime.Minutes()
	if err != nil {
		return 0
	}
	return end - start
}

// SlotState состояние ячейки сетки расписания
type SlotState string

const (
	SlotFree         SlotState = "free"
	SlotStart        SlotState = "start"        // первая ячейка записи
	SlotContinuation SlotState = "continuation" // продолжение записи
)

// TimeSlot ячейка 30-минутной сетки экрана дня
// Occupants обычно содержит не более одной записи; несколько занятых
// одновременно - аномалия данных, которую рендер должен показать, а не скрыть
type TimeSlot struct {
	Time      types.TimeString
	State     SlotState
	Occupants []*Appointment
}

// IsAnomalous returns true if more than one appointment occupies the slot
func (s TimeSlot) IsAnomalous() bool {
	return len(s.Occupants) > 1
}

// Appointment returns the display occupant: the first by start time, nil for a free slot
func (s TimeSlot) Appointment() *Appointment {
	if len(s.Occupants) == 0 {
		return nil
	}
	return s.Occupants[0]
}

// Overlapping returns the active appointments whose intervals intersect the
// candidate [candidateStart, candidateEnd). Intervals are half-open: a booking
// that ends exactly when the candidate starts (or vice versa) does not conflict.
func Overlapping(candidateStart, candidateEnd types.TimeString, appointments []*Appointment) ([]*Appointment, error) {
	cs, err := candidateStart.Minutes()
	if err != nil {
		return nil, fmt.Errorf("candidate start: %w", err)
	}
	ce, err := candidateEnd.Minutes()
	if err != nil {
		return nil, fmt.Errorf("candidate end: %w", err)
	}

	conflicts := make([]*Appointment, 0)
	for _, appt := range appointments {
		// Отменённые записи слот не занимают
		if !appt.IsActive() {
			continue
		}

		s, e, err := appt.Interval()
		if err != nil {
			// Запись с нечитаемым временем не может считаться конфликтом
			continue
		}

		// Полуоткрытые интервалы: строгие неравенства, стык впритык не конфликт
		if cs < e && s < ce {
			conflicts = append(conflicts, appt)
		}
	}

	return conflicts, nil
}

// sortedActiveIntervals возвращает интервалы активных записей, отсортированные по началу
func sortedActiveIntervals(appointments []*Appointment) [][2]int {
	intervals := make([][2]int, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		s, e, err := appt.Interval()
		if err != nil {
			continue
		}
		intervals = append(intervals, [2]int{s, e})
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i][0] < intervals[j][0]
	})

	return intervals
}

// FreeIntervals computes the ordered maximal gaps of at least minDuration
// minutes between appointments within the working window. A closed day has no
// free intervals. Overlapping appointments in the input (a data anomaly) do not
// break the sweep: the cursor only ever moves forward.
func FreeIntervals(day DaySchedule, appointments []*Appointment, minDuration int) ([]FreeInterval, error) {
	free := make([]FreeInterval, 0)

	if day.Closed {
		return free, nil
	}

	workStart, err := day.Start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("working hours start: %w", err)
	}
	workEnd, err := day.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("working hours end: %w", err)
	}

	cursor := workStart
	for _, iv := range sortedActiveIntervals(appointments) {
		if cursor < iv[0] {
			gapEnd := iv[0]
			if gapEnd > workEnd {
				gapEnd = workEnd
			}
			if gapEnd-cursor >= minDuration {
				free = append(free, FreeInterval{
					StartTime: types.NewTimeStringFromMinutes(cursor),
					EndTime:   types.NewTimeStringFromMinutes(gapEnd),
				})
			}
		}
		if iv[1] > cursor {
			cursor = iv[1]
		}
	}

	// Хвост дня после последней записи
	if cursor < workEnd && workEnd-cursor >= minDuration {
		free = append(free, FreeInterval{
			StartTime: types.NewTimeStringFromMinutes(cursor),
			EndTime:   types.NewTimeStringFromMinutes(workEnd),
		})
	}

	return free, nil
}

// HasAnyFreeSlot is the short-circuit variant of FreeIntervals: it reports
// whether the day has at least one gap of minDuration minutes. Used by the
// month scanner, which needs a boolean per day rather than the interval list.
func HasAnyFreeSlot(day DaySchedule, appointments []*Appointment, minDuration int) (bool, error) {
	if day.Closed {
		return false, nil
	}

	workStart, err := day.Start.Minutes()
	if err != nil {
		return false, fmt.Errorf("working hours start: %w", err)
	}
	workEnd, err := day.End.Minutes()
	if err != nil {
		return false, fmt.Errorf("working hours end: %w", err)
	}

	cursor := workStart
	for _, iv := range sortedActiveIntervals(appointments) {
		if cursor < iv[0] {
			gapEnd := iv[0]
			if gapEnd > workEnd {
				gapEnd = workEnd
			}
			if gapEnd-cursor >= minDuration {
				return true, nil
			}
		}
		if iv[1] > cursor {
			cursor = iv[1]
		}
	}

	return cursor < workEnd && workEnd-cursor >= minDuration, nil
}

// BuildDayGrid maps the day's appointments onto the fixed 30-minute grid used
// by the schedule screen. Every tick t with start <= t < end of an active
// appointment is occupied; the tick equal to the appointment start is marked
// SlotStart, the rest SlotContinuation. A tick claimed by several appointments
// keeps all occupants (ordered by start time) so callers can flag the anomaly.
func BuildDayGrid(day DaySchedule, appointments []*Appointment) ([]TimeSlot, error) {
	grid := make([]TimeSlot, 0)

	if day.Closed {
		return grid, nil
	}

	workStart, err := day.Start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("working hours start: %w", err)
	}
	workEnd, err := day.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("working hours end: %w", err)
	}

	active := make([]*Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.IsActive() {
			active = append(active, appt)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].StartTime.IsBefore(active[j].StartTime)
	})

	for tick := workStart; tick < workEnd; tick += GridStepMinutes {
		slot := TimeSlot{
			Time:  types.NewTimeStringFromMinutes(tick),
			State: SlotFree,
		}

		for _, appt := range active {
			s, e, err := appt.Interval()
			if err != nil {
				continue
			}
			if s <= tick && tick < e {
				slot.Occupants = append(slot.Occupants, appt)
			}
		}

		if first := slot.Appointment(); first != nil {
			startMin, _, err := first.Interval()
			if err == nil && startMin == tick {
				slot.State = SlotStart
			} else {
				slot.State = SlotContinuation
			}
		}

		grid = append(grid, slot)
	}

	return grid, nil
}

// ComputeEndTime returns start + duration, rejecting spans that would cross
// midnight instead of formatting an hour past 23.
func ComputeEndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return "", err
	}

	endMin := startMin + durationMinutes
	if endMin >= types.MinutesPerDay {
		return "", ErrCrossesMidnight
	}

	return types.NewTimeStringFromMinutes(endMin), nil
}
