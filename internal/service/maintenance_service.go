package service

import (
	"context"
	"fmt"

	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

// maintenanceService implements MaintenanceService.
type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	logger          zerolog.Logger
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, logger zerolog.Logger) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		logger:          logger.With().Str("service", "maintenance").Logger(),
	}
}

// InitSchema idempotently creates the catalog tables.
func (s *maintenanceService) InitSchema(ctx context.Context) error {
	if err := s.maintenanceRepo.InitSchema(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to initialize schema")
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// ResetIDs renumbers both tables to contiguous 1..N ids.
func (s *maintenanceService) ResetIDs(ctx context.Context) error {
	if err := s.maintenanceRepo.CompactAll(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to reset ids")
		return fmt.Errorf("failed to reset ids: %w", err)
	}
	return nil
}
