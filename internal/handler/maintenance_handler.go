package handler

import (
	"net/http"

	"catalog-api/internal/model"
	"catalog-api/internal/service"

	"github.com/rs/zerolog"
)

// MaintenanceHandler handles administrative HTTP requests.
type MaintenanceHandler struct {
	service service.MaintenanceService
	logger  zerolog.Logger
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(service service.MaintenanceService, logger zerolog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
		logger:  logger.With().Str("handler", "maintenance").Logger(),
	}
}

// InitDB handles POST /api/init-db.
func (h *MaintenanceHandler) InitDB(w http.ResponseWriter, r *http.Request) {
	if err := h.service.InitSchema(r.Context()); err != nil {
		writeStorageError(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Database initialized successfully"})
}

// ResetIDs handles POST /api/reset-ids.
func (h *MaintenanceHandler) ResetIDs(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetIDs(r.Context()); err != nil {
		writeStorageError(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "All IDs reset successfully"})
}
