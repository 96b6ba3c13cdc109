package repository

import (
	"context"
	"fmt"

	"catalog-api/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product and returns it with its assigned id.
func (r *productRepository) Create(ctx context.Context, name string, categoryID int) (*model.Product, error) {
	query := `
		INSERT INTO products (product_name, category_id)
		VALUES ($1, $2)
		RETURNING product_id
	`

	product := model.Product{Name: name, CategoryID: categoryID}
	err := r.pool.QueryRow(ctx, query, name, categoryID).Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("name", name).
			Int("category_id", categoryID).
			Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int("product_id", product.ID).Msg("product created")

	return &product, nil
}

// List retrieves a page of products joined to their category names, ordered
// by product id descending.
func (r *productRepository) List(ctx context.Context, limit, offset int) ([]model.ProductWithCategory, error) {
	query := `
		SELECT p.product_id, p.product_name, c.category_id, c.category_name
		FROM products p
		JOIN categories c ON p.category_id = c.category_id
		ORDER BY p.product_id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.ProductWithCategory
	for rows.Next() {
		var p model.ProductWithCategory
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CategoryName); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Count returns the total number of products.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM products p
		JOIN categories c ON p.category_id = c.category_id
	`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// Update changes the name and category of the product with the given id.
func (r *productRepository) Update(ctx context.Context, id int, name string, categoryID int) error {
	query := `
		UPDATE products
		SET product_name = $1, category_id = $2
		WHERE product_id = $3
	`

	tag, err := r.pool.Exec(ctx, query, name, categoryID, id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int("product_id", id).Msg("update matched no product")
	}

	return nil
}

// Delete removes the product with the given id, then renumbers the surviving
// products to 1..N and resets the id sequence, all in one transaction.
func (r *productRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := prepareCompaction(ctx, tx, productsTable); err != nil {
		r.logger.Error().Err(err).Msg("failed to prepare product compaction")
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	if err := compactProducts(ctx, tx); err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to compact products")
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to commit product delete")
		return fmt.Errorf("failed to commit product delete: %w", err)
	}

	r.logger.Debug().Int("product_id", id).Msg("product deleted and ids compacted")

	return nil
}
