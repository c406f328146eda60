package salon

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/pkg/dbmetrics"
	"github.com/salonik/SLN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий настроек салона
// Настройки - одна строка с JSONB-колонкой working_hours
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours возвращает недельное расписание салона
// Если строки настроек нет, возвращает ErrSettingsNotFound - вызывающий
// подставляет дефолтное расписание
func (r *Repository) GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("working_hours").
		From("salon_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan settings: %v", ErrScanRow, err)
	}

	var week domain.WeekSchedule
	if err := json.Unmarshal(raw, &week); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - decode working hours json: %v", ErrScanRow, err)
	}

	return week, nil
}

// UpdateWorkingHours сохраняет недельное расписание салона
func (r *Repository) UpdateWorkingHours(ctx context.Context, week domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(week)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - encode working hours json: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("salon_settings").
		Set("working_hours", raw).
		Set("updated_at", squirrel.Expr("NOW()")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
