package service

import (
	"context"
	"fmt"
	"strings"

	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// Create adds a new category. The name must be non-empty.
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn().Msg("category name is empty")
		return nil, model.ErrCategoryNameRequired
	}

	category, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Debug().Int("category_id", category.ID).Msg("category created")

	return category, nil
}

// List retrieves all categories ordered by id descending.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}

// Update renames the category with the given id. Zero rows affected is
// treated as "nothing changed", not as an error.
func (s *categoryService) Update(ctx context.Context, id int, name string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn().Int("category_id", id).Msg("category name is empty")
		return nil, model.ErrCategoryNameRequired
	}

	if err := s.categoryRepo.Update(ctx, id, name); err != nil {
		s.logger.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &model.Category{ID: id, Name: name}, nil
}

// Delete removes the category and compacts the remaining category ids.
// Categories that still have products referencing them are refused; the
// foreign key would reject the delete anyway, but checking here yields a
// clear error kind instead of an opaque storage failure.
func (s *categoryService) Delete(ctx context.Context, id int) error {
	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("category_id", id).Msg("failed to check category references")
		return fmt.Errorf("failed to check category references: %w", err)
	}

	if count > 0 {
		s.logger.Warn().
			Int("category_id", id).
			Int("product_count", count).
			Msg("category still referenced by products")
		return model.ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if err == model.ErrCategoryNotFound || err == model.ErrCategoryInUse {
			return err
		}
		s.logger.Error().Err(err).Int("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Debug().Int("category_id", id).Msg("category deleted")

	return nil
}
