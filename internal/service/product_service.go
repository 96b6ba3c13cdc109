package service

import (
	"context"
	"fmt"
	"strings"

	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// productService implements ProductService.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "product").Logger(),
	}
}

// validate checks the name and category invariants shared by Create and
// Update. The foreign key would catch a missing category on insert, but
// checking here yields a clear error kind instead of a storage failure.
func (s *productService) validate(ctx context.Context, name string, categoryID int) error {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn().Msg("product name is empty")
		return model.ErrProductNameRequired
	}

	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		s.logger.Error().Err(err).Int("category_id", categoryID).Msg("failed to check category")
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		s.logger.Warn().Int("category_id", categoryID).Msg("category does not exist")
		return model.ErrCategoryNotFound
	}

	return nil
}

// Create adds a new product after validating its name and category.
func (s *productService) Create(ctx context.Context, name string, categoryID int) (*model.Product, error) {
	if err := s.validate(ctx, name, categoryID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, name, categoryID)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Debug().Int("product_id", product.ID).Msg("product created")

	return product, nil
}

// List retrieves one page of products with their category names. Page falls
// back to 1 and pageSize to 10 when out of range; pageSize is capped at 100.
func (s *productService) List(ctx context.Context, page, pageSize int) (*model.ProductPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total, err := s.productRepo.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count products")
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * pageSize
	products, err := s.productRepo.List(ctx, pageSize, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("page", page).
			Int("page_size", pageSize).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.ProductWithCategory{}
	}

	totalPages := (total + pageSize - 1) / pageSize

	s.logger.Debug().
		Int("count", len(products)).
		Int("page", page).
		Int("total", total).
		Msg("retrieved products")

	return &model.ProductPage{
		Data: products,
		Pagination: model.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Update changes the product's name and category. Zero rows affected is
// treated as "nothing changed", not as an error.
func (s *productService) Update(ctx context.Context, id int, name string, categoryID int) error {
	if err := s.validate(ctx, name, categoryID); err != nil {
		return err
	}

	if err := s.productRepo.Update(ctx, id, name, categoryID); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes the product and compacts the remaining product ids.
func (s *productService) Delete(ctx context.Context, id int) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == model.ErrProductNotFound {
			return err
		}
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Debug().Int("product_id", id).Msg("product deleted")

	return nil
}
