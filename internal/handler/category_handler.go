package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-api/internal/model"
	"catalog-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service  service.CategoryService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "category").Logger(),
	}
}

// decodeRequest parses and validates the category request body shared by
// Create and Update.
func (h *CategoryHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*model.CategoryRequest, bool) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid request body", h.logger)
		return nil, false
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "Category name required", h.logger)
		return nil, false
	}

	return &req, true
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	category, err := h.service.Create(r.Context(), req.CategoryName)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNameRequired) {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, err.Error(), h.logger)
			return
		}
		writeStorageError(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeStorageError(w, r, h.logger)
		return
	}

	if categories == nil {
		categories = []model.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// Update handles PUT /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "Invalid category id", h.logger)
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	category, err := h.service.Update(r.Context(), id, req.CategoryName)
	if err != nil {
		if errors.Is(err, model.ErrCategoryNameRequired) {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, err.Error(), h.logger)
			return
		}
		writeStorageError(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "Invalid category id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrCategoryNotFound):
			writeError(w, r, http.StatusNotFound, model.ErrCodeCategoryNotFound, "Category not found", h.logger)
		case errors.Is(err, model.ErrCategoryInUse):
			writeError(w, r, http.StatusConflict, model.ErrCodeCategoryInUse, err.Error(), h.logger)
		default:
			writeStorageError(w, r, h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteCategoryResponse{
		Message:           "Category deleted and IDs reset successfully",
		DeletedCategoryID: id,
	})
}
