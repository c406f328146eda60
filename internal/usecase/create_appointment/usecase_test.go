package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonik/SLN-BookingService/internal/domain"
	apptRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/appointment"
	"github.com/salonik/SLN-BookingService/internal/integrations/accounts"
	"github.com/salonik/SLN-BookingService/pkg/ptr"
	"github.com/salonik/SLN-BookingService/pkg/types"
)

// --- стабы зависимостей ---

type stubAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *appt
	out.ID = 101
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	s.created = &out
	return &out, nil
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubClientRepo struct {
	byID      *domain.UnregisteredClient
	getErr    error
	createErr error
}

func (s *stubClientRepo) Create(_ context.Context, c *domain.UnregisteredClient) (*domain.UnregisteredClient, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *c
	out.ID = 55
	return &out, nil
}

func (s *stubClientRepo) GetByID(_ context.Context, _ int64) (*domain.UnregisteredClient, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.byID, nil
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
	err  error
}

func (s *stubSalonRepo) GetWorkingHours(_ context.Context) (domain.WeekSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.week, nil
}

type stubAccounts struct {
	client *accounts.Client
	err    error
}

func (s *stubAccounts) GetClientWithGracefulDegradation(_ context.Context, _ int64) (*accounts.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.client, nil
}

type stubNotifier struct {
	calls int
	err   error
}

func (s *stubNotifier) AppointmentCreated(_ context.Context, _ *domain.Appointment) error {
	s.calls++
	return s.err
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

// --- окружение теста ---

type env struct {
	appts    *stubAppointmentRepo
	clients  *stubClientRepo
	services *stubServiceRepo
	salon    *stubSalonRepo
	accounts *stubAccounts
	notifier *stubNotifier
	uc       *UseCase
}

func newEnv(policy domain.DurationPolicy) *env {
	e := &env{
		appts:   &stubAppointmentRepo{},
		clients: &stubClientRepo{},
		services: &stubServiceRepo{svc: &domain.Service{
			ID:              7,
			Name:            "Стрижка",
			DurationMinutes: 60,
			Price:           1500,
			IsActive:        true,
		}},
		salon:    &stubSalonRepo{},
		accounts: &stubAccounts{client: &accounts.Client{ID: 42, FullName: "Анна Иванова"}},
		notifier: &stubNotifier{},
	}

	e.uc = NewUseCase(e.appts, e.clients, e.services, e.salon, e.accounts, e.notifier,
		passthroughTxManager{}, policy, nopLogger{})
	// Фиксируем "сегодня", чтобы тесты не зависели от календаря
	e.uc.timeProvider = fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return e
}

func baseRequest() *Request {
	return &Request{
		StaffID:   1,
		ServiceID: 7,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		ClientID:  ptr.Ptr(int64(42)),
	}
}

// --- тесты ---

func TestExecute_SimpleBooking(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	resp, err := e.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	// Конец дорассчитан из длительности услуги
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Анна Иванова", resp.ClientName)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1, e.notifier.calls)
}

func TestExecute_ExplicitEndTime(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	req := baseRequest()
	req.EndTime = "11:30"

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
}

func TestExecute_SlotConflictWithDetails(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.appts.existing = []*domain.Appointment{
		{
			ID:          9,
			StartTime:   "14:00",
			EndTime:     "15:00",
			Status:      domain.StatusConfirmed,
			ClientName:  "Мария Петрова",
			ServiceName: "Маникюр",
		},
	}

	req := baseRequest()
	req.StartTime = "14:30"

	_, err := e.uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, int64(9), conflictErr.Conflicts[0].ID)
	assert.Contains(t, err.Error(), "Мария Петрова")
	assert.Contains(t, err.Error(), "14:00")

	assert.Zero(t, e.notifier.calls)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.appts.existing = []*domain.Appointment{
		{ID: 9, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 10, StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	}

	// Ровно между двумя записями, стык впритык
	resp, err := e.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
}

func TestExecute_RaceLostToConcurrentBooking(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	// Проверка пересечений прошла, но вставка упала на exclusion constraint
	e.appts.createErr = apptRepo.ErrSlotTaken

	_, err := e.uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_WalkInClientCreated(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	req := baseRequest()
	req.ClientID = nil
	req.NewClient = &NewClientData{FullName: "Ольга Смирнова", Phone: ptr.Ptr("+79001234567")}

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.UnregisteredClientID)
	assert.Equal(t, int64(55), *resp.UnregisteredClientID)
	assert.Nil(t, resp.ClientID)
	assert.Equal(t, "Ольга Смирнова", resp.ClientName)
	// Уведомления только для зарегистрированных клиентов
	assert.Zero(t, e.notifier.calls)
}

func TestExecute_WalkInClientCreateFails(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.clients.createErr = errors.New("db down")

	req := baseRequest()
	req.ClientID = nil
	req.NewClient = &NewClientData{FullName: "Ольга Смирнова"}

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientCreateFailed)
	assert.Nil(t, e.appts.created)
}

func TestExecute_AccountsDegradedFallsBackToProvidedName(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.accounts.err = accounts.ErrServiceDegraded

	req := baseRequest()
	req.ClientName = "Анна И."

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Анна И.", resp.ClientName)
}

func TestExecute_NotificationFailureDoesNotBlock(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.notifier.err = errors.New("notifications down")

	resp, err := e.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 1, e.notifier.calls)
}

func TestExecute_StrictDurationPolicy(t *testing.T) {
	e := newEnv(domain.DurationPolicyStrict)

	req := baseRequest()
	req.EndTime = "11:30" // услуга длится 60 минут, интервал 90

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDurationMismatch)

	// Совпадающая длительность проходит
	req.EndTime = "11:00"
	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SalonClosed(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.salon.week = domain.WeekSchedule{
		"tuesday": {Closed: true},
	}

	// 2026-09-15 - вторник
	_, err := e.uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_OutsideWorkingHoursStillAllowed(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.salon.week = domain.WeekSchedule{
		"tuesday": {Start: "12:00", End: "18:00"},
	}

	// 10:00 раньше открытия, но бронирование проходит
	resp, err := e.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_CrossesMidnight(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	req := baseRequest()
	req.StartTime = "23:30"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCrossesMidnight)
}

func TestExecute_PastDateRejected(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	req := baseRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationErrors(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"no service", func(r *Request) { r.ServiceID = 0 }, ErrMissingService},
		{"no client", func(r *Request) { r.ClientID = nil }, ErrMissingClient},
		{"two clients", func(r *Request) { r.UnregisteredClientID = ptr.Ptr(int64(3)) }, ErrInvalidInput},
		{"no start time", func(r *Request) { r.StartTime = "" }, ErrMissingTimes},
		{"end before start", func(r *Request) { r.EndTime = "09:00" }, ErrInvalidTimeOrder},
		{"too short", func(r *Request) { r.EndTime = "10:10" }, ErrTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(req)
			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InactiveService(t *testing.T) {
	e := newEnv(domain.DurationPolicyLenient)
	e.services.svc.IsActive = false

	_, err := e.uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}
