package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalog-api/internal/model"
	"catalog-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// decodeRequest parses and validates the product request body shared by
// Create and Update.
func (h *ProductHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*model.ProductRequest, bool) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid request body", h.logger)
		return nil, false
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "Product name and category id required", h.logger)
		return nil, false
	}

	return &req, true
}

// writeProductError maps service errors shared by Create and Update.
func (h *ProductHandler) writeProductError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrProductNameRequired):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, err.Error(), h.logger)
	case errors.Is(err, model.ErrCategoryNotFound):
		writeError(w, r, http.StatusBadRequest, model.ErrCodeCategoryNotFound, err.Error(), h.logger)
	default:
		writeStorageError(w, r, h.logger)
	}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), req.ProductName, req.CategoryID)
	if err != nil {
		h.writeProductError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// List handles GET /api/products with page/pageSize query parameters.
// Absent or non-numeric values fall back to the defaults instead of erroring.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}

	pageSize := 10
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pageSize = n
		}
	}

	result, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		writeStorageError(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "Invalid product id", h.logger)
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, req.ProductName, req.CategoryID); err != nil {
		h.writeProductError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "updated"})
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "Invalid product id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, model.ErrCodeProductNotFound, "Product not found", h.logger)
			return
		}
		writeStorageError(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteProductResponse{
		Message:          "Product deleted and IDs reset successfully",
		DeletedProductID: id,
	})
}
