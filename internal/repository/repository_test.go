package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the catalog schema and
// returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// The schema comes from the same code path POST /api/init-db uses.
	require.NoError(t, NewMaintenanceRepository(pool, zerolog.Nop()).InitSchema(ctx))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// resetTables empties both tables and realigns the id sequences so tests can
// share one container.
func resetTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		TRUNCATE products, categories;
		SELECT setval(pg_get_serial_sequence('categories', 'category_id'), 1, false);
		SELECT setval(pg_get_serial_sequence('products', 'product_id'), 1, false);
	`)
	require.NoError(t, err)
}

// seedCategories inserts categories through the serial sequence and returns
// their assigned ids in insertion order.
func seedCategories(t *testing.T, pool *pgxpool.Pool, names ...string) []int {
	t.Helper()
	ctx := context.Background()

	ids := make([]int, 0, len(names))
	for _, name := range names {
		var id int
		err := pool.QueryRow(ctx,
			"INSERT INTO categories (category_name) VALUES ($1) RETURNING category_id", name,
		).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// seedProduct inserts one product and returns its assigned id.
func seedProduct(t *testing.T, pool *pgxpool.Pool, name string, categoryID int) int {
	t.Helper()
	ctx := context.Background()

	var id int
	err := pool.QueryRow(ctx,
		"INSERT INTO products (product_name, category_id) VALUES ($1, $2) RETURNING product_id",
		name, categoryID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// tableIDs returns the table's ids in ascending order.
func tableIDs(t *testing.T, pool *pgxpool.Pool, spec tableSpec) []int {
	t.Helper()
	ctx := context.Background()

	rows, err := pool.Query(ctx, "SELECT "+spec.idColumn+" FROM "+spec.name+" ORDER BY "+spec.idColumn)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

// categoryNamesByID returns a map of category id to name.
func categoryNamesByID(t *testing.T, pool *pgxpool.Pool) map[int]string {
	t.Helper()
	ctx := context.Background()

	rows, err := pool.Query(ctx, "SELECT category_id, category_name FROM categories")
	require.NoError(t, err)
	defer rows.Close()

	names := make(map[int]string)
	for rows.Next() {
		var id int
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		names[id] = name
	}
	require.NoError(t, rows.Err())
	return names
}
