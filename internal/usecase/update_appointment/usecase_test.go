package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/pkg/ptr"
	"github.com/salonik/SLN-BookingService/pkg/types"
)

type stubAppointmentRepo struct {
	byID       *domain.Appointment
	getErr     error
	dayAppts   []*domain.Appointment
	lastFilter domain.DayAppointmentsFilter
	updated    *domain.Appointment
	updateErr  error
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.byID, nil
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	s.lastFilter = filter
	return s.dayAppts, nil
}

func (s *stubAppointmentRepo) UpdateSchedule(_ context.Context, appt *domain.Appointment) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = appt
	return nil
}

type stubServiceRepo struct {
	svc *domain.Service
	err error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.svc, nil
}

type stubSalonRepo struct {
	week domain.WeekSchedule
}

func (s *stubSalonRepo) GetWorkingHours(_ context.Context) (domain.WeekSchedule, error) {
	return s.week, nil
}

type stubNotifier struct {
	calls int
}

func (s *stubNotifier) AppointmentRescheduled(_ context.Context, _ *domain.Appointment) error {
	s.calls++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type env struct {
	appts    *stubAppointmentRepo
	services *stubServiceRepo
	salon    *stubSalonRepo
	notifier *stubNotifier
	uc       *UseCase
}

func newEnv(policy domain.DurationPolicy) *env {
	e := &env{
		appts: &stubAppointmentRepo{
			byID: &domain.Appointment{
				ID:              33,
				ClientID:        ptr.Ptr(int64(42)),
				ServiceID:       7,
				AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				StartTime:       "10:00",
				EndTime:         "11:00",
				Status:          domain.StatusConfirmed,
				ClientName:      "Анна Иванова",
				ServiceName:     "Стрижка",
			},
		},
		services: &stubServiceRepo{svc: &domain.Service{
			ID:              8,
			Name:            "Окрашивание",
			DurationMinutes: 120,
			Price:           4000,
			IsActive:        true,
		}},
		salon:    &stubSalonRepo{},
		notifier: &stubNotifier{},
	}

	e.uc = NewUseCase(e.appts, e.services, e.salon, e.notifier,
		passthroughTxManager{}, policy, nopLogger{})
	e.uc.timeProvider = fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return e
}

func TestExecute_RescheduleTime(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	resp, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		StartTime:     ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)

	// Длительность сохранена, конец пересчитан
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:00"), resp.EndTime)
	assert.Equal(t, 1, e.notifier.calls)
}

func TestExecute_SelfExcludedFromConflicts(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	_, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		StartTime:     ptr.Ptr(types.TimeString("10:30")),
	})
	require.NoError(t, err)

	// Сама запись исключена из проверки конфликтов
	require.NotNil(t, e.appts.lastFilter.ExcludeID)
	assert.Equal(t, int64(33), *e.appts.lastFilter.ExcludeID)
}

func TestExecute_ConflictWithOtherAppointment(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.appts.dayAppts = []*domain.Appointment{
		{ID: 77, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed, ClientName: "Мария"},
	}

	_, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		StartTime:     ptr.Ptr(types.TimeString("14:30")),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(77), conflictErr.Conflicts[0].ID)

	// Запись не тронута
	assert.Nil(t, e.appts.updated)
	assert.Zero(t, e.notifier.calls)
}

func TestExecute_ChangeServiceRecomputesEnd(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	resp, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		ServiceID:     ptr.Ptr(int64(8)),
	})
	require.NoError(t, err)

	// Новая услуга длится 120 минут
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	assert.Equal(t, "Окрашивание", resp.ServiceName)
	assert.Equal(t, 4000.0, resp.ServicePrice)
}

func TestExecute_MoveToDifferentDate(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	newDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	resp, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		Date:          &newDate,
	})
	require.NoError(t, err)

	assert.Equal(t, newDate, resp.AppointmentDate)
	assert.Equal(t, newDate, e.appts.lastFilter.Date)
}

func TestExecute_CancelledCannotBeRescheduled(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.appts.byID.Status = domain.StatusCancelled

	_, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		StartTime:     ptr.Ptr(types.TimeString("14:00")),
	})
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_PastTargetDateRejected(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	pastDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	_, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		Date:          &pastDate,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ClosedTargetDateRejected(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.salon.week = domain.WeekSchedule{"sunday": {Closed: true}}

	// 2026-09-20 - воскресенье
	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	_, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		Date:          &sunday,
	})
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_MidnightCrossingRejected(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	_, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		StartTime:     ptr.Ptr(types.TimeString("23:30")),
	})
	assert.ErrorIs(t, err, ErrCrossesMidnight)
}

func TestExecute_NotesOnlyUpdate(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	resp, err := e.uc.Execute(context.Background(), &Request{
		AppointmentID: 33,
		StaffID:       1,
		Notes:         ptr.Ptr("клиент просил напомнить"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Notes)
	assert.Equal(t, "клиент просил напомнить", *resp.Notes)
	// Время не изменилось
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
}
