package create_unregistered_client

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.UnregisteredClient) (*domain.UnregisteredClient, error)
	FindByPhone(ctx context.Context, phone string) (*domain.UnregisteredClient, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
