package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// WarehouseProvider reads the CORE views directly from the warehouse.
type WarehouseProvider struct {
	log *slog.Logger
	db  *sql.DB
}

func NewWarehouseProvider(log *slog.Logger, db *sql.DB) *WarehouseProvider {
	return &WarehouseProvider{log: log, db: db}
}

func (p *WarehouseProvider) Mode() string { return "warehouse" }

var viewOrder = map[string]string{
	ViewDimCustomer: "CUSTOMER_ID",
	ViewDimProduct:  "PRODUCT_ID",
	ViewFactOrder:   "ORDER_DATE DESC",
	ViewSalesByDay:  "ORDER_DAY",
}

func (p *WarehouseProvider) View(ctx context.Context, name string, limit int) ([]map[string]any, error) {
	order, ok := viewOrder[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownView, name)
	}
	query := fmt.Sprintf("SELECT * FROM CORE.%s ORDER BY %s", strings.ToUpper(name), order)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[strings.ToLower(col)] = jsonSafe(values[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func jsonSafe(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return v
	}
}
