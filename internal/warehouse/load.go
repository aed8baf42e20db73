package warehouse

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// ErrMissingSource marks a loader input file that does not exist. The whole
// load aborts: a partially loaded warehouse is worse than no load.
var ErrMissingSource = errors.New("missing source file")

const defaultBatchSize = 10000

// Loader bulk-inserts the four CSV artifacts into RAW tables. Values are
// parsed into warehouse types per the entity's column kinds before binding,
// so typing is explicit rather than left to file-format inference.
type Loader struct {
	log       *slog.Logger
	db        *sql.DB
	dataDir   string
	batchSize int
}

func NewLoader(log *slog.Logger, db *sql.DB, dataDir string) *Loader {
	return &Loader{log: log, db: db, dataDir: dataDir, batchSize: defaultBatchSize}
}

var sources = []struct {
	table   string
	file    string
	columns []dataset.Column
}{
	{"CUSTOMERS", "customers.csv", dataset.CustomerColumns},
	{"PRODUCTS", "products.csv", dataset.ProductColumns},
	{"ORDERS", "orders.csv", dataset.OrderColumns},
	{"ORDER_ITEMS", "order_items.csv", dataset.OrderItemColumns},
}

// LoadAll loads every entity's CSV into its RAW table and reports total rows
// inserted. All four files are checked for existence up front.
func (l *Loader) LoadAll(ctx context.Context) (int64, error) {
	for _, src := range sources {
		path := filepath.Join(l.dataDir, "csv", src.file)
		if _, err := os.Stat(path); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
	}

	var total int64
	for _, src := range sources {
		path := filepath.Join(l.dataDir, "csv", src.file)
		n, err := l.loadFile(ctx, src.table, path, src.columns)
		if err != nil {
			return total, fmt.Errorf("load %s: %w", src.table, err)
		}
		l.log.Info("loaded warehouse table", "table", src.table, "rows", n)
		total += n
	}
	return total, nil
}

func (l *Loader) loadFile(ctx context.Context, table, path string, columns []dataset.Column) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, err
	}
	if len(header) != len(columns) {
		return 0, fmt.Errorf("%s: expected %d columns, file has %d", path, len(columns), len(header))
	}

	records, err := r.ReadAll()
	if err != nil {
		return 0, err
	}

	var total int64
	for start := 0; start < len(records); start += l.batchSize {
		end := min(start+l.batchSize, len(records))
		n, err := l.insertBatch(ctx, table, columns, records[start:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// insertBatch binds one multi-row INSERT. gosnowflake uses ? placeholders.
func (l *Loader) insertBatch(ctx context.Context, table string, columns []dataset.Column, records [][]string) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = strings.ToUpper(col.Name)
	}
	row := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	rows := make([]string, len(records))
	args := make([]any, 0, len(records)*len(columns))
	for i, record := range records {
		rows[i] = row
		for j, col := range columns {
			v, err := parseValue(col.Kind, record[j])
			if err != nil {
				return 0, fmt.Errorf("row %d column %s: %w", i+1, names[j], err)
			}
			args = append(args, v)
		}
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(names, ", "), strings.Join(rows, ","))
	if _, err := l.db.ExecContext(ctx, stmt, args...); err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func parseValue(kind dataset.Kind, s string) (any, error) {
	if s == "" {
		return nil, nil
	}
	switch kind {
	case dataset.KindInt:
		return strconv.ParseInt(s, 10, 64)
	case dataset.KindFloat:
		return strconv.ParseFloat(s, 64)
	case dataset.KindBool:
		return strconv.ParseBool(s)
	case dataset.KindTime:
		return time.Parse(time.RFC3339, s)
	default:
		return s, nil
	}
}
