package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// tableSpec identifies a catalog table and its integer primary key column.
// Instances are package constants, never built from request input.
type tableSpec struct {
	name     string
	idColumn string
}

var (
	categoriesTable = tableSpec{name: "categories", idColumn: "category_id"}
	productsTable   = tableSpec{name: "products", idColumn: "product_id"}
)

// prepareCompaction defers constraint checking to commit time and takes an
// exclusive lock on every table the compaction will rewrite. The lock
// serializes concurrent compactions; without it two interleaved renumbering
// scans could both read the same id order and corrupt the contiguous
// sequence. Reads are not blocked.
func prepareCompaction(ctx context.Context, tx pgx.Tx, tables ...tableSpec) error {
	if _, err := tx.Exec(ctx, "SET CONSTRAINTS ALL DEFERRED"); err != nil {
		return fmt.Errorf("failed to defer constraints: %w", err)
	}
	for _, t := range tables {
		lock := fmt.Sprintf("LOCK TABLE %s IN EXCLUSIVE MODE", t.name)
		if _, err := tx.Exec(ctx, lock); err != nil {
			return fmt.Errorf("failed to lock table %s: %w", t.name, err)
		}
	}
	return nil
}

// renumberTable reassigns the table's ids to 1..N in ascending current-id
// order. Rows keep their relative position; only the gap left by a delete
// (or by prior non-contiguous state) closes up.
func renumberTable(ctx context.Context, tx pgx.Tx, t tableSpec) error {
	query := fmt.Sprintf(`
		WITH renumbered AS (
			SELECT %[2]s AS old_id, row_number() OVER (ORDER BY %[2]s) AS new_id
			FROM %[1]s
		)
		UPDATE %[1]s
		SET %[2]s = renumbered.new_id
		FROM renumbered
		WHERE %[1]s.%[2]s = renumbered.old_id
		  AND renumbered.old_id <> renumbered.new_id
	`, t.name, t.idColumn)

	if _, err := tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to renumber %s: %w", t.name, err)
	}
	return nil
}

// resetSequence aligns the table's id sequence with its row count so the
// next insert receives N+1, or 1 when the table is empty.
func resetSequence(ctx context.Context, tx pgx.Tx, t tableSpec) error {
	query := fmt.Sprintf(`
		SELECT setval(
			pg_get_serial_sequence('%[1]s', '%[2]s'),
			GREATEST((SELECT COUNT(*) FROM %[1]s), 1),
			(SELECT COUNT(*) FROM %[1]s) > 0
		)
	`, t.name, t.idColumn)

	if _, err := tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to reset %s sequence: %w", t.name, err)
	}
	return nil
}

// remapProductCategories rewrites products.category_id through the same
// old-id to new-id mapping an immediately following category renumbering
// will apply, so every product keeps pointing at the same category. Must run
// before renumberTable(categoriesTable) in the same transaction.
func remapProductCategories(ctx context.Context, tx pgx.Tx) error {
	query := `
		WITH renumbered AS (
			SELECT category_id AS old_id, row_number() OVER (ORDER BY category_id) AS new_id
			FROM categories
		)
		UPDATE products
		SET category_id = renumbered.new_id
		FROM renumbered
		WHERE products.category_id = renumbered.old_id
		  AND renumbered.old_id <> renumbered.new_id
	`

	if _, err := tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to remap product category references: %w", err)
	}
	return nil
}

// compactCategories closes the id gap in categories and keeps product
// references and the id sequence consistent, all within the caller's
// transaction.
func compactCategories(ctx context.Context, tx pgx.Tx) error {
	if err := remapProductCategories(ctx, tx); err != nil {
		return err
	}
	if err := renumberTable(ctx, tx, categoriesTable); err != nil {
		return err
	}
	return resetSequence(ctx, tx, categoriesTable)
}

// compactProducts closes the id gap in products and realigns the id sequence
// within the caller's transaction.
func compactProducts(ctx context.Context, tx pgx.Tx) error {
	if err := renumberTable(ctx, tx, productsTable); err != nil {
		return err
	}
	return resetSequence(ctx, tx, productsTable)
}
