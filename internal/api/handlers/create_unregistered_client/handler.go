package create_unregistered_client

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/api/middleware"
	"github.com/salonik/SLN-BookingService/internal/domain"
	clientRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/client"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID сотрудника"
	msgMissingName        = "не указано имя клиента"
	msgNameTooLong        = "имя клиента слишком длинное"
)

// CreateClientRequest HTTP request model
type CreateClientRequest struct {
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"fullName"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"createdAt"`

	// Existing true, если клиент с таким телефоном уже был заведён
	Existing bool `json:"existing,omitempty"`
}

type Handler struct {
	clients ClientRepository
	logger  Logger
}

func NewHandler(clients ClientRepository, logger Logger) *Handler {
	return &Handler{
		clients: clients,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/unregistered
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /clients/unregistered - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/unregistered - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		h.logger.Warn("POST /clients/unregistered - Missing client name: staff_id=%d", staffID)
		handlers.RespondBadRequest(w, msgMissingName)
		return
	}
	if len(req.FullName) > domain.MaxClientNameLength {
		h.logger.Warn("POST /clients/unregistered - Client name too long: staff_id=%d", staffID)
		handlers.RespondBadRequest(w, msgNameTooLong)
		return
	}

	// Повторный звонок с того же номера не плодит дубликаты
	if req.Phone != nil && *req.Phone != "" {
		existing, err := h.clients.FindByPhone(r.Context(), *req.Phone)
		if err == nil {
			h.logger.Info("POST /clients/unregistered - Existing client found by phone: client_id=%d", existing.ID)
			handlers.RespondJSON(w, http.StatusOK, fromDomainClient(existing, true))
			return
		}
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			h.logger.Error("POST /clients/unregistered - Failed to look up client by phone: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	client, err := h.clients.Create(r.Context(), &domain.UnregisteredClient{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedBy: staffID,
	})
	if err != nil {
		h.logger.Error("POST /clients/unregistered - Failed to create client: staff_id=%d, error=%v",
			staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /clients/unregistered - Client created successfully: client_id=%d, staff_id=%d",
		client.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, fromDomainClient(client, false))
}

func fromDomainClient(c *domain.UnregisteredClient, existing bool) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		Existing:  existing,
	}
}
