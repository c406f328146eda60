package accounts

// Client профиль зарегистрированного клиента из accounts-service
type Client struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ErrorResponse модель ошибки от accounts-service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
