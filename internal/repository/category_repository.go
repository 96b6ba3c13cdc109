package repository

import (
	"context"
	"fmt"

	"catalog-api/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// Create inserts a new category and returns it with its assigned id.
func (r *categoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	query := `
		INSERT INTO categories (category_name)
		VALUES ($1)
		RETURNING category_id
	`

	category := model.Category{Name: name}
	err := r.pool.QueryRow(ctx, query, name).Scan(&category.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", name).Msg("failed to insert category")
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	r.logger.Debug().Int("category_id", category.ID).Msg("category created")

	return &category, nil
}

// GetAll retrieves all categories ordered by id descending.
func (r *categoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT category_id, category_name
		FROM categories
		ORDER BY category_id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Update changes the name of the category with the given id.
func (r *categoryRepository) Update(ctx context.Context, id int, name string) error {
	query := `
		UPDATE categories
		SET category_name = $1
		WHERE category_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, name, id)
	if err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int("category_id", id).Msg("update matched no category")
	}

	return nil
}

// Delete removes the category with the given id, then renumbers the
// surviving categories to 1..N and resets the id sequence, all in one
// transaction. Product references are remapped alongside so they keep
// resolving to the same categories.
func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := prepareCompaction(ctx, tx, categoriesTable, productsTable); err != nil {
		r.logger.Error().Err(err).Msg("failed to prepare category compaction")
		return err
	}

	// Re-check references under the table lock. The service checks too, but
	// only this check is race-free; with constraints deferred a referenced
	// delete would otherwise remap products onto the wrong category instead
	// of failing.
	var refs int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, id).Scan(&refs); err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to check category references")
		return fmt.Errorf("failed to check category references: %w", err)
	}
	if refs > 0 {
		r.logger.Warn().Int("category_id", id).Int("product_count", refs).Msg("category still referenced")
		return model.ErrCategoryInUse
	}

	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int("category_id", id).Msg("category not found")
		return model.ErrCategoryNotFound
	}

	if err := compactCategories(ctx, tx); err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to compact categories")
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to commit category delete")
		return fmt.Errorf("failed to commit category delete: %w", err)
	}

	r.logger.Debug().Int("category_id", id).Msg("category deleted and ids compacted")

	return nil
}

// Exists reports whether a category with the given id exists.
func (r *categoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE category_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to check category existence")
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	return exists, nil
}

// CountProducts returns the number of products referencing the category.
func (r *categoryRepository) CountProducts(ctx context.Context, id int) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE category_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to count referencing products")
		return 0, fmt.Errorf("failed to count referencing products: %w", err)
	}

	return count, nil
}
