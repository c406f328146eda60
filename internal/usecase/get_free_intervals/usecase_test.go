package get_free_intervals

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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC) // вторник

func TestExecute_DefaultWindow(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubSalonRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	require.Len(t, resp.Intervals, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Intervals[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), resp.Intervals[0].EndTime)
}

func TestExecute_GapsAroundAppointments(t *testing.T) {
	appts := &stubAppointmentRepo{appts: []*domain.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		{StartTime: "12:00", EndTime: "14:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(appts, &stubSalonRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Intervals, 3)
	assert.Equal(t, types.TimeString("11:00"), resp.Intervals[1].StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.Intervals[1].EndTime)
}

func TestExecute_MinDurationFilters(t *testing.T) {
	appts := &stubAppointmentRepo{appts: []*domain.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(appts, &stubSalonRepo{}, nopLogger{})

	// Часовой промежуток 09:00-10:00 отфильтровывается запросом на 90 минут
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, MinDurationMinutes: 90})
	require.NoError(t, err)

	require.Len(t, resp.Intervals, 1)
	assert.Equal(t, types.TimeString("11:00"), resp.Intervals[0].StartTime)
}

func TestExecute_ClosedDay(t *testing.T) {
	salon := &stubSalonRepo{week: domain.WeekSchedule{"tuesday": {Closed: true}}}
	uc := NewUseCase(&stubAppointmentRepo{}, salon, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Intervals)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubSalonRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, MinDurationMinutes: -10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
