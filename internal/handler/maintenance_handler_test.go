package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMaintenanceService is a mock implementation of MaintenanceService.
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMaintenanceService) ResetIDs(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestMaintenanceHandler_InitDB(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockMaintenanceService)
		svc.On("InitSchema", mock.Anything).Return(nil)

		h := NewMaintenanceHandler(svc, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/init-db", nil)
		rec := httptest.NewRecorder()

		h.InitDB(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "Database initialized successfully"}`, rec.Body.String())
	})

	t.Run("Storage error", func(t *testing.T) {
		svc := new(MockMaintenanceService)
		svc.On("InitSchema", mock.Anything).Return(errors.New("database error"))

		h := NewMaintenanceHandler(svc, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/init-db", nil)
		rec := httptest.NewRecorder()

		h.InitDB(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMaintenanceHandler_ResetIDs(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockMaintenanceService)
		svc.On("ResetIDs", mock.Anything).Return(nil)

		h := NewMaintenanceHandler(svc, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/reset-ids", nil)
		rec := httptest.NewRecorder()

		h.ResetIDs(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "All IDs reset successfully"}`, rec.Body.String())
	})

	t.Run("Storage error", func(t *testing.T) {
		svc := new(MockMaintenanceService)
		svc.On("ResetIDs", mock.Anything).Return(errors.New("database error"))

		h := NewMaintenanceHandler(svc, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/reset-ids", nil)
		rec := httptest.NewRecorder()

		h.ResetIDs(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
