package get_day_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/pkg/types"
)

type stubAppointmentRepo struct {
	appts []*domain.Appointment
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appts, nil
}

type stubSalonRepo struct {
	week domain.WeekSchedule
}

func (s *stubSalonRepo) GetWorkingHours(_ context.Context) (domain.WeekSchedule, error) {
	return s.week, nil
}

type recordingLogger struct {
	errorCalls int
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(string, ...interface{}) {}
func (l *recordingLogger) Error(string, ...interface{}) {
	l.errorCalls++
}

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC) // вторник

func slotAt(t *testing.T, slots []Slot, tm types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == tm {
			return s
		}
	}
	t.Fatalf("slot %s not found", tm)
	return Slot{}
}

func TestExecute_GridStates(t *testing.T) {
	appts := &stubAppointmentRepo{appts: []*domain.Appointment{
		{ID: 5, ClientName: "Анна Иванова", ServiceName: "Стрижка",
			StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(appts, &stubSalonRepo{}, &recordingLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	// 09:00-18:00 с шагом 30 минут
	assert.Len(t, resp.Slots, 18)

	free := slotAt(t, resp.Slots, "09:00")
	assert.Equal(t, string(domain.SlotFree), free.State)
	assert.Nil(t, free.Appointment)

	start := slotAt(t, resp.Slots, "10:00")
	assert.Equal(t, string(domain.SlotStart), start.State)
	require.NotNil(t, start.Appointment)
	assert.Equal(t, int64(5), start.Appointment.ID)
	assert.Equal(t, "Анна Иванова", start.Appointment.ClientName)

	cont := slotAt(t, resp.Slots, "10:30")
	assert.Equal(t, string(domain.SlotContinuation), cont.State)
	require.NotNil(t, cont.Appointment)
	assert.Equal(t, int64(5), cont.Appointment.ID)

	// Правая граница полуоткрытого интервала свободна
	after := slotAt(t, resp.Slots, "11:00")
	assert.Equal(t, string(domain.SlotFree), after.State)
	assert.False(t, after.Anomalous)
}

func TestExecute_AnomalousSlotReported(t *testing.T) {
	appts := &stubAppointmentRepo{appts: []*domain.Appointment{
		{ID: 1, ClientName: "Анна Иванова", StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		{ID: 2, ClientName: "Мария Петрова", StartTime: "10:30", EndTime: "11:30", Status: domain.StatusConfirmed},
	}}
	log := &recordingLogger{}
	uc := NewUseCase(appts, &stubSalonRepo{}, log)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	slot := slotAt(t, resp.Slots, "10:30")
	assert.True(t, slot.Anomalous)
	require.Len(t, slot.Occupants, 2)

	// Отображается первая по времени начала
	require.NotNil(t, slot.Appointment)
	assert.Equal(t, int64(1), slot.Appointment.ID)

	assert.Greater(t, log.errorCalls, 0)
}

func TestExecute_ClosedDay(t *testing.T) {
	salon := &stubSalonRepo{week: domain.WeekSchedule{"tuesday": {Closed: true}}}
	uc := NewUseCase(&stubAppointmentRepo{}, salon, &recordingLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubSalonRepo{}, &recordingLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
