package postgres

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/generate"
)

func TestInsertStatement(t *testing.T) {
	stmt := insertStatement(dataset.OrdersTable(nil))
	require.Equal(t,
		"INSERT INTO orders (order_id, customer_id, order_date, status, order_total) VALUES ($1,$2,$3,$4,$5)",
		stmt)
}

// Requires docker; enable with INTEGRATION_TEST=1.
func TestLoadAllIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("set INTEGRATION_TEST=1 to run against a postgres container")
	}

	ctx := context.Background()
	pgC, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("retail"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
	)
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var pool *pgxpool.Pool
	require.Eventually(t, func() bool {
		pool, err = pgxpool.New(ctx, pgURL)
		return err == nil && pool.Ping(ctx) == nil
	}, 30*time.Second, time.Second)
	defer pool.Close()

	now := time.Now().UTC()
	customers, err := generate.CustomersAt(20, generate.DefaultCustomerSeed, now)
	require.NoError(t, err)
	products, err := generate.ProductsAt(10, generate.DefaultProductSeed, now)
	require.NoError(t, err)
	orders, items, err := generate.OrdersAt(30, 3, 20, 10, generate.DefaultOrderSeed, now)
	require.NoError(t, err)
	ds := dataset.Dataset{Customers: customers, Products: products, Orders: orders, OrderItems: items}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	loader := NewLoader(log, pool)
	total, err := loader.LoadAll(ctx, ds)
	require.NoError(t, err)
	require.EqualValues(t, ds.Rows(), total)

	var count int64
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM order_items").Scan(&count))
	require.EqualValues(t, len(items), count)
}
