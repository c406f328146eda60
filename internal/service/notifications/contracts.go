package notifications

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/infra/storage/notification"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Insert(ctx context.Context, n *notification.Notification) error
}
