package get_month_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

type stubAppointmentRepo struct {
	appts []*domain.Appointment
}

func (s *stubAppointmentRepo) GetByDateRange(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return s.appts, nil
}

type stubSalonRepo struct {
	week domain.WeekSchedule
}

func (s *stubSalonRepo) GetWorkingHours(_ context.Context) (domain.WeekSchedule, error) {
	return s.week, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fullDay(date time.Time) *domain.Appointment {
	return &domain.Appointment{
		AppointmentDate: date,
		StartTime:       "09:00",
		EndTime:         "18:00",
		Status:          domain.StatusConfirmed,
	}
}

func newUC(appts *stubAppointmentRepo, salon *stubSalonRepo, blocked *time.Weekday, now time.Time) *UseCase {
	uc := NewUseCase(appts, salon, blocked, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecute_BookedMonthWithSingleGap(t *testing.T) {
	// Весь октябрь занят целиком, кроме 15-го, где занято только утро
	appts := &stubAppointmentRepo{}
	first := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == time.October; day = day.AddDate(0, 0, 1) {
		if day.Day() == 15 {
			appts.appts = append(appts.appts, &domain.Appointment{
				AppointmentDate: day,
				StartTime:       "09:00",
				EndTime:         "13:00",
				Status:          domain.StatusConfirmed,
			})
			continue
		}
		appts.appts = append(appts.appts, fullDay(day))
	}

	uc := newUC(appts, &stubSalonRepo{}, nil, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.October})
	require.NoError(t, err)

	require.Len(t, resp.Availability, 31)
	for key, available := range resp.Availability {
		if key == "2026-10-15" {
			assert.True(t, available, "day %s must stay available", key)
		} else {
			assert.False(t, available, "day %s must be unavailable", key)
		}
	}
}

func TestExecute_PastDaysUnavailable(t *testing.T) {
	uc := newUC(&stubAppointmentRepo{}, &stubSalonRepo{}, nil,
		time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})
	require.NoError(t, err)

	assert.False(t, resp.Availability["2026-09-14"])
	// Сегодняшний и будущие дни свободного месяца доступны
	assert.True(t, resp.Availability["2026-09-15"])
	assert.True(t, resp.Availability["2026-09-16"])
}

func TestExecute_BlockedWeekday(t *testing.T) {
	sunday := time.Sunday
	uc := newUC(&stubAppointmentRepo{}, &stubSalonRepo{}, &sunday,
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})
	require.NoError(t, err)

	// 2026-09-06 и 2026-09-13 - воскресенья
	assert.False(t, resp.Availability["2026-09-06"])
	assert.False(t, resp.Availability["2026-09-13"])
	assert.True(t, resp.Availability["2026-09-07"])
}

func TestExecute_ClosedWeekdayFromSchedule(t *testing.T) {
	salon := &stubSalonRepo{week: domain.WeekSchedule{
		"monday": {Closed: true},
	}}
	uc := newUC(&stubAppointmentRepo{}, salon, nil,
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.September})
	require.NoError(t, err)

	// 2026-09-07 - понедельник
	assert.False(t, resp.Availability["2026-09-07"])
	assert.True(t, resp.Availability["2026-09-08"])
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUC(&stubAppointmentRepo{}, &stubSalonRepo{}, nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Year: 1999, Month: time.January})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
