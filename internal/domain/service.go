package domain

import "time"

// Service represents a price-list service of the salon
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UnregisteredClient клиент без аккаунта, заведённый сотрудником
// для записи по телефону или walk-in
type UnregisteredClient struct {
	ID        int64
	FullName  string
	Phone     *string
	Email     *string
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
