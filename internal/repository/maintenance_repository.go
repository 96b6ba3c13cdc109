package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// The primary keys and the foreign key are declared DEFERRABLE so the
// compaction transaction can postpone constraint checks until commit while
// rows are renumbered. Outside that transaction they behave as ordinary
// immediate constraints.
const schema = `
	CREATE TABLE IF NOT EXISTS categories (
		category_id   SERIAL,
		category_name TEXT NOT NULL,
		CONSTRAINT categories_pkey PRIMARY KEY (category_id)
			DEFERRABLE INITIALLY IMMEDIATE
	);

	CREATE TABLE IF NOT EXISTS products (
		product_id   SERIAL,
		product_name TEXT NOT NULL,
		category_id  INTEGER NOT NULL,
		CONSTRAINT products_pkey PRIMARY KEY (product_id)
			DEFERRABLE INITIALLY IMMEDIATE,
		CONSTRAINT products_category_fk FOREIGN KEY (category_id)
			REFERENCES categories (category_id)
			DEFERRABLE INITIALLY IMMEDIATE
	);
`

// maintenanceRepository implements the MaintenanceRepository interface using PostgreSQL.
type maintenanceRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMaintenanceRepository creates a new PostgreSQL-backed maintenance repository.
func NewMaintenanceRepository(pool *pgxpool.Pool, logger zerolog.Logger) MaintenanceRepository {
	return &maintenanceRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "maintenance").Logger(),
	}
}

// InitSchema creates both catalog tables if absent and aligns the id
// sequences with current table contents. Safe to call repeatedly.
func (r *maintenanceRepository) InitSchema(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create tables")
		return fmt.Errorf("failed to create tables: %w", err)
	}

	for _, t := range []tableSpec{categoriesTable, productsTable} {
		if err := resetSequence(ctx, tx, t); err != nil {
			r.logger.Error().Err(err).Str("table", t.name).Msg("failed to align sequence")
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit schema initialization")
		return fmt.Errorf("failed to commit schema initialization: %w", err)
	}

	r.logger.Info().Msg("database schema initialized")

	return nil
}

// CompactAll renumbers both tables to contiguous 1..N ids in a single
// transaction, independent of any delete.
func (r *maintenanceRepository) CompactAll(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := prepareCompaction(ctx, tx, categoriesTable, productsTable); err != nil {
		r.logger.Error().Err(err).Msg("failed to prepare full compaction")
		return err
	}

	if err := compactCategories(ctx, tx); err != nil {
		r.logger.Error().Err(err).Msg("failed to compact categories")
		return err
	}

	if err := compactProducts(ctx, tx); err != nil {
		r.logger.Error().Err(err).Msg("failed to compact products")
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit full compaction")
		return fmt.Errorf("failed to commit full compaction: %w", err)
	}

	r.logger.Info().Msg("all table ids compacted")

	return nil
}
