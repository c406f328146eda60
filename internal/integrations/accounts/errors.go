package accounts

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент с таким аккаунтом не найден
	ErrClientNotFound = errors.New("accounts client: client not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accounts client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("accounts client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что accounts-service недоступен и профиль клиента можно
	// временно заменить данными, сохранёнными в самой записи
	ErrServiceDegraded = errors.New("accounts service unavailable: graceful degradation applied")
)
