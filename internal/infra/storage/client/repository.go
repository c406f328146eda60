package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/pkg/dbmetrics"
	"github.com/salonik/SLN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий незарегистрированных клиентов
// Зарегистрированные клиенты живут в accounts-service, здесь только
// заведённые сотрудниками записи для walk-in / телефонных клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает незарегистрированного клиента
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, c *domain.UnregisteredClient) (*domain.UnregisteredClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unregistered_clients").
		Columns("full_name", "phone", "email", "created_by").
		Values(c.FullName, c.Phone, c.Email, c.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает незарегистрированного клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.UnregisteredClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"phone",
		"email",
		"created_by",
		"created_at",
		"updated_at",
	).
		From("unregistered_clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.UnregisteredClient
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.FullName,
		&c.Phone,
		&c.Email,
		&c.CreatedBy,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// FindByPhone ищет незарегистрированного клиента по номеру телефона
// Используется, чтобы не плодить дубликаты при повторных звонках
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*domain.UnregisteredClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"phone",
		"email",
		"created_by",
		"created_at",
		"updated_at",
	).
		From("unregistered_clients").
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.UnregisteredClient
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.FullName,
		&c.Phone,
		&c.Email,
		&c.CreatedBy,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
