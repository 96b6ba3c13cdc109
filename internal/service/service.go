package service

import (
	"context"

	"catalog-api/internal/model"
)

// CategoryService defines operations for category management.
type CategoryService interface {
	// Create adds a new category. The name must be non-empty.
	Create(ctx context.Context, name string) (*model.Category, error)

	// List retrieves all categories ordered by id descending.
	List(ctx context.Context) ([]model.Category, error)

	// Update renames the category with the given id. The name must be
	// non-empty; a missing id is not an error.
	Update(ctx context.Context, id int, name string) (*model.Category, error)

	// Delete removes the category and compacts the remaining category ids.
	// Fails with model.ErrCategoryInUse while products still reference it.
	Delete(ctx context.Context, id int) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// Create adds a new product. The name must be non-empty and the
	// category must exist.
	Create(ctx context.Context, name string, categoryID int) (*model.Product, error)

	// List retrieves one page of products with their category names.
	List(ctx context.Context, page, pageSize int) (*model.ProductPage, error)

	// Update changes the product's name and category under the same
	// validation as Create; a missing id is not an error.
	Update(ctx context.Context, id int, name string, categoryID int) error

	// Delete removes the product and compacts the remaining product ids.
	Delete(ctx context.Context, id int) error
}

// MaintenanceService defines administrative operations.
type MaintenanceService interface {
	// InitSchema idempotently creates the catalog tables.
	InitSchema(ctx context.Context) error

	// ResetIDs renumbers both tables to contiguous 1..N ids.
	ResetIDs(ctx context.Context) error
}
