package salon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonik/SLN-BookingService/internal/domain"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
)

type stubSalonRepo struct {
	week      domain.WeekSchedule
	getErr    error
	updateErr error

	saved domain.WeekSchedule
}

func (s *stubSalonRepo) GetWorkingHours(_ context.Context) (domain.WeekSchedule, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.week, nil
}

func (s *stubSalonRepo) UpdateWorkingHours(_ context.Context, week domain.WeekSchedule) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.saved = week
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetWorkingHours_DefaultWhenNotConfigured(t *testing.T) {
	repo := &stubSalonRepo{getErr: salonRepo.ErrSettingsNotFound}
	svc := New(repo, nopLogger{})

	week, err := svc.GetWorkingHours(context.Background())
	require.NoError(t, err)

	require.Len(t, week, 7)
	assert.Equal(t, domain.DefaultOpenTime, week["monday"].Start)
	assert.Equal(t, domain.DefaultCloseTime, week["monday"].End)
	assert.False(t, week["sunday"].Closed)
}

func TestGetWorkingHours_BackfillsMissingDays(t *testing.T) {
	repo := &stubSalonRepo{week: domain.WeekSchedule{
		"monday": {Start: "10:00", End: "20:00"},
		"sunday": {Closed: true},
	}}
	svc := New(repo, nopLogger{})

	week, err := svc.GetWorkingHours(context.Background())
	require.NoError(t, err)

	require.Len(t, week, 7)
	assert.Equal(t, domain.DaySchedule{Start: "10:00", End: "20:00"}, week["monday"])
	assert.True(t, week["sunday"].Closed)
	assert.Equal(t, domain.DefaultDaySchedule(), week["wednesday"])
}

func TestUpdateWorkingHours(t *testing.T) {
	repo := &stubSalonRepo{}
	svc := New(repo, nopLogger{})

	week := domain.WeekSchedule{
		"monday": {Start: "09:00", End: "18:00"},
		"sunday": {Closed: true},
	}
	err := svc.UpdateWorkingHours(context.Background(), week)
	require.NoError(t, err)
	assert.Equal(t, week, repo.saved)
}

func TestUpdateWorkingHours_Invalid(t *testing.T) {
	svc := New(&stubSalonRepo{}, nopLogger{})

	tests := []struct {
		name string
		week domain.WeekSchedule
	}{
		{"пустое расписание", domain.WeekSchedule{}},
		{"неизвестный день", domain.WeekSchedule{"someday": {Start: "09:00", End: "18:00"}}},
		{"конец раньше начала", domain.WeekSchedule{"monday": {Start: "18:00", End: "09:00"}}},
		{"некорректное время", domain.WeekSchedule{"monday": {Start: "9 утра", End: "18:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateWorkingHours(context.Background(), tt.week)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}
