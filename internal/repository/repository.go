package repository

import (
	"context"

	"catalog-api/internal/model"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// Create inserts a new category and returns it with its assigned id.
	Create(ctx context.Context, name string) (*model.Category, error)

	// GetAll retrieves all categories ordered by id descending.
	GetAll(ctx context.Context) ([]model.Category, error)

	// Update changes the name of the category with the given id. Zero rows
	// affected is not an error.
	Update(ctx context.Context, id int, name string) error

	// Delete removes the category with the given id and compacts the
	// remaining category ids to a contiguous 1..N sequence, remapping
	// product references in the same transaction. Returns
	// model.ErrCategoryNotFound if the id does not exist.
	Delete(ctx context.Context, id int) error

	// Exists reports whether a category with the given id exists.
	Exists(ctx context.Context, id int) (bool, error)

	// CountProducts returns the number of products referencing the category.
	CountProducts(ctx context.Context, id int) (int, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product and returns it with its assigned id.
	Create(ctx context.Context, name string, categoryID int) (*model.Product, error)

	// List retrieves a page of products joined to their category names,
	// ordered by product id descending.
	List(ctx context.Context, limit, offset int) ([]model.ProductWithCategory, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int, error)

	// Update changes the name and category of the product with the given id.
	// Zero rows affected is not an error.
	Update(ctx context.Context, id int, name string, categoryID int) error

	// Delete removes the product with the given id and compacts the
	// remaining product ids to a contiguous 1..N sequence. Returns
	// model.ErrProductNotFound if the id does not exist.
	Delete(ctx context.Context, id int) error
}

// MaintenanceRepository defines administrative operations on the schema.
type MaintenanceRepository interface {
	// InitSchema creates both catalog tables if absent and aligns the id
	// sequences with current table contents. Idempotent.
	InitSchema(ctx context.Context) error

	// CompactAll renumbers both tables to contiguous 1..N ids in a single
	// transaction, independent of any delete.
	CompactAll(ctx context.Context) error
}
