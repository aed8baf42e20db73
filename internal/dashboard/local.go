package dashboard

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// LocalProvider recomputes the views from the tabular artifacts under
// <dataDir>/csv, applying the same cancellation-zeroing and daily
// aggregation the warehouse views use. A missing entity file yields an
// empty view rather than an error, matching read-only degraded operation.
type LocalProvider struct {
	log     *slog.Logger
	dataDir string
}

func NewLocalProvider(log *slog.Logger, dataDir string) *LocalProvider {
	return &LocalProvider{log: log, dataDir: dataDir}
}

func (p *LocalProvider) Mode() string { return "local" }

func (p *LocalProvider) View(ctx context.Context, name string, limit int) ([]map[string]any, error) {
	switch name {
	case ViewDimCustomer:
		customers, err := p.customers()
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(customers))
		for _, c := range customers {
			rows = append(rows, map[string]any{
				"customer_id": c.CustomerID, "first_name": c.FirstName,
				"last_name": c.LastName, "email": c.Email, "phone": c.Phone,
				"city": c.City, "state": c.State, "country": c.Country,
				"customer_created_at": c.CreatedAt.Format(time.RFC3339),
			})
		}
		return clip(rows, limit), nil
	case ViewDimProduct:
		products, err := p.products()
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(products))
		for _, pr := range products {
			rows = append(rows, map[string]any{
				"product_id": pr.ProductID, "product_name": pr.ProductName,
				"category": pr.Category, "price": pr.Price, "cost": pr.Cost,
				"active": pr.Active, "product_created_at": pr.CreatedAt.Format(time.RFC3339),
			})
		}
		return clip(rows, limit), nil
	case ViewFactOrder:
		fact, err := p.fact()
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(fact))
		for _, f := range fact {
			rows = append(rows, map[string]any{
				"order_item_id": f.OrderItemID, "order_id": f.OrderID,
				"customer_id": f.CustomerID, "product_id": f.ProductID,
				"order_date": f.OrderDate.Format(time.RFC3339),
				"quantity":   f.Quantity, "sales_amount": f.SalesAmount,
			})
		}
		return clip(rows, limit), nil
	case ViewSalesByDay:
		fact, err := p.fact()
		if err != nil {
			return nil, err
		}
		daily := SalesByDay(fact)
		rows := make([]map[string]any, 0, len(daily))
		for _, d := range daily {
			rows = append(rows, map[string]any{
				"order_day": d.Day, "total_sales": d.TotalSales, "total_quantity": d.TotalQuantity,
			})
		}
		return clip(rows, limit), nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownView, name)
	}
}

func (p *LocalProvider) fact() ([]FactRow, error) {
	orders, err := p.orders()
	if err != nil {
		return nil, err
	}
	items, err := p.orderItems()
	if err != nil {
		return nil, err
	}
	return BuildFact(orders, items), nil
}

func (p *LocalProvider) customers() ([]dataset.Customer, error) {
	rows, err := p.readRows("customers.csv", dataset.CustomerColumns)
	if err != nil {
		return nil, err
	}
	out := make([]dataset.Customer, 0, len(rows))
	for _, r := range rows {
		out = append(out, dataset.Customer{
			CustomerID: r[0].(int64), FirstName: r[1].(string), LastName: r[2].(string),
			Email: r[3].(string), Phone: r[4].(string), Address: r[5].(string),
			City: r[6].(string), State: r[7].(string), PostalCode: r[8].(string),
			Country: r[9].(string), CreatedAt: r[10].(time.Time),
		})
	}
	return out, nil
}

func (p *LocalProvider) products() ([]dataset.Product, error) {
	rows, err := p.readRows("products.csv", dataset.ProductColumns)
	if err != nil {
		return nil, err
	}
	out := make([]dataset.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, dataset.Product{
			ProductID: r[0].(int64), ProductName: r[1].(string), Category: r[2].(string),
			Price: r[3].(float64), Cost: r[4].(float64), Active: r[5].(bool), CreatedAt: r[6].(time.Time),
		})
	}
	return out, nil
}

func (p *LocalProvider) orders() ([]dataset.Order, error) {
	rows, err := p.readRows("orders.csv", dataset.OrderColumns)
	if err != nil {
		return nil, err
	}
	out := make([]dataset.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, dataset.Order{
			OrderID: r[0].(int64), CustomerID: r[1].(int64), OrderDate: r[2].(time.Time),
			Status: dataset.OrderStatus(r[3].(string)), OrderTotal: r[4].(float64),
		})
	}
	return out, nil
}

func (p *LocalProvider) orderItems() ([]dataset.OrderItem, error) {
	rows, err := p.readRows("order_items.csv", dataset.OrderItemColumns)
	if err != nil {
		return nil, err
	}
	out := make([]dataset.OrderItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dataset.OrderItem{
			OrderItemID: r[0].(int64), OrderID: r[1].(int64), ProductID: r[2].(int64),
			Quantity: r[3].(int64), UnitPrice: r[4].(float64), ExtendedPrice: r[5].(float64),
		})
	}
	return out, nil
}

// readRows parses one entity CSV into typed values per its column kinds.
func (p *LocalProvider) readRows(file string, columns []dataset.Column) ([][]any, error) {
	path := filepath.Join(p.dataDir, "csv", file)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			p.log.Warn("local artifact missing, view will be empty", "path", path)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	out := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] { // skip header
		if len(record) != len(columns) {
			return nil, fmt.Errorf("%s: expected %d columns, got %d", file, len(columns), len(record))
		}
		row := make([]any, len(columns))
		for i, col := range columns {
			v, err := parseLocal(col.Kind, record[i])
			if err != nil {
				return nil, fmt.Errorf("%s column %s: %w", file, col.Name, err)
			}
			row[i] = v
		}
		out = append(out, row)
	}
	return out, nil
}

func parseLocal(kind dataset.Kind, s string) (any, error) {
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

func clip(rows []map[string]any, limit int) []map[string]any {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
