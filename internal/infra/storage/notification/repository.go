package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/salonik/SLN-BookingService/pkg/dbmetrics"
	"github.com/salonik/SLN-BookingService/pkg/psqlbuilder"
)

// Notification строка уведомления для клиента
// Доставкой (push/реалтайм) занимается отдельный сервис, здесь только вставка строки
type Notification struct {
	UserID int64
	Type   string
	Title  string
	Body   string
	Data   map[string]interface{}
}

// Repository репозиторий уведомлений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert вставляет уведомление
// Вызывается best-effort: падение вставки логируется, но не откатывает бронирование
func (r *Repository) Insert(ctx context.Context, n *Notification) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("%w: Insert - encode data json: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "type", "title", "body", "data").
		Values(n.UserID, n.Type, n.Title, n.Body, data).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
