package create_appointment

import (
	"context"
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/internal/integrations/accounts"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDate(ctx context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория незарегистрированных клиентов
type ClientRepository interface {
	Create(ctx context.Context, c *domain.UnregisteredClient) (*domain.UnregisteredClient, error)
	GetByID(ctx context.Context, id int64) (*domain.UnregisteredClient, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error)
}

// AccountsClient интерфейс клиента accounts-service
type AccountsClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*accounts.Client, error)
}

// Notifier отправляет уведомление клиенту о созданной записи
// Вызывается best-effort: ошибка не влияет на результат бронирования
type Notifier interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
