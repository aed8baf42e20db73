// Package postgres appends a generated dataset into a relational store with
// explicit batched inserts and an explicit column-to-type mapping, instead
// of delegating typing to a client library's bulk helper.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

const defaultChunkSize = 20000

type Loader struct {
	log       *slog.Logger
	pool      *pgxpool.Pool
	chunkSize int
}

func NewLoader(log *slog.Logger, pool *pgxpool.Pool) *Loader {
	return &Loader{log: log, pool: pool, chunkSize: defaultChunkSize}
}

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY,
		first_name  VARCHAR(100) NOT NULL,
		last_name   VARCHAR(100) NOT NULL,
		email       VARCHAR(255) NOT NULL,
		phone       VARCHAR(50),
		address     VARCHAR(255),
		city        VARCHAR(100),
		state       VARCHAR(10),
		postal_code VARCHAR(20),
		country     VARCHAR(50),
		created_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id   INTEGER PRIMARY KEY,
		product_name VARCHAR(255) NOT NULL,
		category     VARCHAR(50) NOT NULL,
		price        NUMERIC(10,2) NOT NULL,
		cost         NUMERIC(10,2) NOT NULL,
		active       BOOLEAN NOT NULL,
		created_at   TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id    INTEGER PRIMARY KEY,
		customer_id INTEGER NOT NULL,
		order_date  TIMESTAMP NOT NULL,
		status      VARCHAR(20) NOT NULL,
		order_total NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id  INTEGER PRIMARY KEY,
		order_id       INTEGER NOT NULL,
		product_id     INTEGER NOT NULL,
		quantity       INTEGER NOT NULL,
		unit_price     NUMERIC(10,2) NOT NULL,
		extended_price NUMERIC(12,2) NOT NULL
	)`,
}

// LoadAll creates the four tables if absent and appends the dataset. Each
// entity is already fully in memory before its first insert is queued; rows
// go out in pgx batches of at most chunkSize queued statements.
func (l *Loader) LoadAll(ctx context.Context, ds dataset.Dataset) (int64, error) {
	for _, stmt := range ddl {
		if _, err := l.pool.Exec(ctx, stmt); err != nil {
			return 0, err
		}
	}

	var total int64
	for _, t := range ds.Tables() {
		n, err := l.loadTable(ctx, t)
		if err != nil {
			return total, err
		}
		l.log.Info("loaded table", "table", t.Name, "rows", n)
		total += n
	}
	return total, nil
}

func (l *Loader) loadTable(ctx context.Context, t dataset.Table) (int64, error) {
	stmt := insertStatement(t)
	batch := &pgx.Batch{}
	var n int64
	for _, row := range t.Rows {
		batch.Queue(stmt, row...)
		if batch.Len() >= l.chunkSize {
			if err := l.flush(ctx, batch); err != nil {
				return n, err
			}
			n += int64(batch.Len())
			batch = &pgx.Batch{}
		}
	}
	if batch.Len() > 0 {
		if err := l.flush(ctx, batch); err != nil {
			return n, err
		}
		n += int64(batch.Len())
	}
	return n, nil
}

func (l *Loader) flush(ctx context.Context, batch *pgx.Batch) error {
	br := l.pool.SendBatch(ctx, batch)
	return br.Close()
}

func insertStatement(t dataset.Table) string {
	cols := make([]string, len(t.Columns))
	binds := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cols[i] = col.Name
		binds[i] = "$" + strconv.Itoa(i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(cols, ", "), strings.Join(binds, ","))
}
