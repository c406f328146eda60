package list_services

import (
	"net/http"

	"github.com/salonik/SLN-BookingService/internal/api/handlers"
	"github.com/salonik/SLN-BookingService/internal/domain"
)

// ServiceResponse услуга из прайса
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse список активных услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, fromDomainServices(services))
}

func fromDomainServices(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}
	return &ServiceListResponse{Services: out}
}
