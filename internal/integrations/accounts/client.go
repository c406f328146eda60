package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPClient клиент для работы с accounts-service
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента accounts-service
func NewClient(baseURL string, timeout time.Duration, log Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClient получает профиль зарегистрированного клиента
func (c *HTTPClient) GetClient(ctx context.Context, clientID int64) (*Client, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid client ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrClientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var client Client
	if err := json.NewDecoder(resp.Body).Decode(&client); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &client, nil
}

// GetClientWithGracefulDegradation получает профиль клиента с graceful degradation
// При недоступности accounts-service возвращает ErrServiceDegraded: бронирование
// может продолжиться с именем клиента, переданным сотрудником
func (c *HTTPClient) GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*Client, error) {
	client, err := c.GetClient(ctx, clientID)
	if err != nil {
		// Бизнес-ошибку пробрасываем как есть
		if errors.Is(err, ErrClientNotFound) {
			c.log.Info("No account found for client_id=%d", clientID)
			return nil, err
		}

		c.log.Warn("Accounts service degraded for client_id=%d: %v", clientID, err)
		return nil, ErrServiceDegraded
	}

	return client, nil
}
