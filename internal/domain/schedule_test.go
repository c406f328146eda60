package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

func appt(id int64, start, end types.TimeString, status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func openDay(start, end types.TimeString) DaySchedule {
	return DaySchedule{Start: start, End: end}
}

func TestOverlapping_TouchingIsNotConflict(t *testing.T) {
	existing := []*Appointment{
		appt(1, "10:00", "11:00", StatusConfirmed),
	}

	// Стык впритык с обеих сторон
	before, err := Overlapping("09:00", "10:00", existing)
	require.NoError(t, err)
	assert.Empty(t, before)

	after, err := Overlapping("11:00", "12:00", existing)
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestOverlapping_DetectsIntersections(t *testing.T) {
	existing := []*Appointment{
		appt(1, "10:00", "11:00", StatusConfirmed),
		appt(2, "14:00", "15:00", StatusPending),
	}

	tests := []struct {
		name        string
		start, end  types.TimeString
		conflictIDs []int64
	}{
		{"exact duplicate", "10:00", "11:00", []int64{1}},
		{"partial overlap head", "10:30", "11:30", []int64{1}},
		{"partial overlap tail", "09:30", "10:30", []int64{1}},
		{"candidate swallows existing", "09:00", "12:00", []int64{1}},
		{"candidate inside existing", "10:15", "10:45", []int64{1}},
		{"spans both", "10:30", "14:30", []int64{1, 2}},
		{"free gap between", "11:00", "14:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := Overlapping(tt.start, tt.end, existing)
			require.NoError(t, err)

			ids := make([]int64, 0, len(conflicts))
			for _, c := range conflicts {
				ids = append(ids, c.ID)
			}
			if tt.conflictIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.conflictIDs, ids)
			}
		})
	}
}

func TestOverlapping_CancelledDoesNotOccupySlot(t *testing.T) {
	existing := []*Appointment{
		appt(1, "10:00", "11:00", StatusCancelled),
	}

	conflicts, err := Overlapping("10:00", "11:00", existing)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFreeIntervals_EmptyDay(t *testing.T) {
	free, err := FreeIntervals(openDay("09:00", "18:00"), nil, MinBookableGapMinutes)
	require.NoError(t, err)

	require.Len(t, free, 1)
	assert.Equal(t, types.TimeString("09:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), free[0].EndTime)
	assert.Equal(t, 540, free[0].DurationMinutes())
}

func TestFreeIntervals_GapsBetweenAppointments(t *testing.T) {
	appts := []*Appointment{
		appt(1, "10:00", "11:00", StatusConfirmed),
		appt(2, "13:00", "14:30", StatusPending),
	}

	free, err := FreeIntervals(openDay("09:00", "18:00"), appts, MinBookableGapMinutes)
	require.NoError(t, err)

	require.Len(t, free, 3)
	assert.Equal(t, types.TimeString("09:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), free[0].EndTime)
	assert.Equal(t, types.TimeString("11:00"), free[1].StartTime)
	assert.Equal(t, types.TimeString("13:00"), free[1].EndTime)
	assert.Equal(t, types.TimeString("14:30"), free[2].StartTime)
	assert.Equal(t, types.TimeString("18:00"), free[2].EndTime)
}

func TestFreeIntervals_ShortGapFilteredOut(t *testing.T) {
	// Между записями только 15 минут - меньше минимального промежутка
	appts := []*Appointment{
		appt(1, "09:00", "10:00", StatusConfirmed),
		appt(2, "10:15", "18:00", StatusConfirmed),
	}

	free, err := FreeIntervals(openDay("09:00", "18:00"), appts, MinBookableGapMinutes)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestFreeIntervals_ClosedDay(t *testing.T) {
	free, err := FreeIntervals(DaySchedule{Closed: true}, nil, MinBookableGapMinutes)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestFreeIntervals_FullyBookedDay(t *testing.T) {
	appts := []*Appointment{
		appt(1, "09:00", "18:00", StatusConfirmed),
	}

	free, err := FreeIntervals(openDay("09:00", "18:00"), appts, MinBookableGapMinutes)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestFreeIntervals_OverlappingDataDoesNotBreakSweep(t *testing.T) {
	// Две пересекающиеся записи (аномалия данных): курсор двигается
	// только вперед и не даёт отрицательных промежутков
	appts := []*Appointment{
		appt(1, "10:00", "12:00", StatusConfirmed),
		appt(2, "11:00", "11:30", StatusConfirmed),
	}

	free, err := FreeIntervals(openDay("09:00", "18:00"), appts, MinBookableGapMinutes)
	require.NoError(t, err)

	require.Len(t, free, 2)
	assert.Equal(t, types.TimeString("09:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), free[0].EndTime)
	assert.Equal(t, types.TimeString("12:00"), free[1].StartTime)
	assert.Equal(t, types.TimeString("18:00"), free[1].EndTime)
}

func TestFreeIntervals_AppointmentOutsideWindow(t *testing.T) {
	// Запись заканчивается после закрытия: хвоста дня нет
	appts := []*Appointment{
		appt(1, "17:00", "19:00", StatusConfirmed),
	}

	free, err := FreeIntervals(openDay("09:00", "18:00"), appts, MinBookableGapMinutes)
	require.NoError(t, err)

	require.Len(t, free, 1)
	assert.Equal(t, types.TimeString("09:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), free[0].EndTime)
}

func TestHasAnyFreeSlot(t *testing.T) {
	day := openDay("09:00", "18:00")

	tests := []struct {
		name  string
		appts []*Appointment
		want  bool
	}{
		{"empty day", nil, true},
		{"fully booked", []*Appointment{appt(1, "09:00", "18:00", StatusConfirmed)}, false},
		{"gap in the middle", []*Appointment{
			appt(1, "09:00", "12:00", StatusConfirmed),
			appt(2, "13:00", "18:00", StatusConfirmed),
		}, true},
		{"only short gap", []*Appointment{
			appt(1, "09:00", "12:00", StatusConfirmed),
			appt(2, "12:15", "18:00", StatusConfirmed),
		}, false},
		{"cancelled frees the day", []*Appointment{appt(1, "09:00", "18:00", StatusCancelled)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasAnyFreeSlot(day, tt.appts, MinBookableGapMinutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAnyFreeSlot_ClosedDay(t *testing.T) {
	got, err := HasAnyFreeSlot(DaySchedule{Closed: true}, nil, MinBookableGapMinutes)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestBuildDayGrid_StatesAndBoundaries(t *testing.T) {
	appts := []*Appointment{
		appt(1, "10:00", "11:00", StatusConfirmed),
	}

	grid, err := BuildDayGrid(openDay("09:00", "12:00"), appts)
	require.NoError(t, err)

	// 09:00 09:30 10:00 10:30 11:00 11:30
	require.Len(t, grid, 6)

	assert.Equal(t, SlotFree, grid[0].State)
	assert.Equal(t, SlotFree, grid[1].State)
	assert.Equal(t, SlotStart, grid[2].State)
	assert.Equal(t, SlotContinuation, grid[3].State)
	// Полуоткрытый интервал: ячейка 11:00 свободна
	assert.Equal(t, SlotFree, grid[4].State)
	assert.Equal(t, SlotFree, grid[5].State)

	assert.Equal(t, types.TimeString("10:00"), grid[2].Time)
	require.NotNil(t, grid[2].Appointment())
	assert.Equal(t, int64(1), grid[2].Appointment().ID)
}

func TestBuildDayGrid_OffGridStart(t *testing.T) {
	// Запись 10:15-11:05 занимает ячейки 10:00, 10:30 и 11:00
	appts := []*Appointment{
		appt(1, "10:15", "11:05", StatusConfirmed),
	}

	grid, err := BuildDayGrid(openDay("10:00", "12:00"), appts)
	require.NoError(t, err)

	require.Len(t, grid, 4)
	// Начало записи не совпадает ни с одним тиком, поэтому ячейка
	// 10:00 помечается продолжением
	assert.Equal(t, SlotContinuation, grid[0].State)
	assert.Equal(t, SlotContinuation, grid[1].State)
	assert.Equal(t, SlotContinuation, grid[2].State)
	assert.Equal(t, SlotFree, grid[3].State)
}

func TestBuildDayGrid_AnomalyPreserved(t *testing.T) {
	appts := []*Appointment{
		appt(2, "10:30", "11:30", StatusConfirmed),
		appt(1, "10:00", "11:00", StatusConfirmed),
	}

	grid, err := BuildDayGrid(openDay("10:00", "12:00"), appts)
	require.NoError(t, err)
	require.Len(t, grid, 4)

	// Ячейка 10:30 занята обеими записями
	anomalous := grid[1]
	assert.True(t, anomalous.IsAnomalous())
	require.Len(t, anomalous.Occupants, 2)
	// Первая по времени начала показывается как основная
	assert.Equal(t, int64(1), anomalous.Appointment().ID)

	// Соседние ячейки аномалией не являются
	assert.False(t, grid[0].IsAnomalous())
	assert.False(t, grid[2].IsAnomalous())
}

func TestBuildDayGrid_ClosedDay(t *testing.T) {
	grid, err := BuildDayGrid(DaySchedule{Closed: true}, nil)
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime("10:00", 60)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), end)

	end, err = ComputeEndTime("09:15", 45)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), end)
}

func TestComputeEndTime_RejectsMidnightCrossing(t *testing.T) {
	_, err := ComputeEndTime("23:30", 60)
	assert.ErrorIs(t, err, ErrCrossesMidnight)

	// Конец ровно в полночь тоже не допускается
	_, err = ComputeEndTime("23:00", 60)
	assert.ErrorIs(t, err, ErrCrossesMidnight)

	end, err := ComputeEndTime("23:00", 59)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:59"), end)
}
