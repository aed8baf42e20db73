// Package dashboard serves the four read-only exploration views: customer
// dimension, product dimension, a denormalized order fact, and a daily sales
// aggregate. Views come from the warehouse when it is reachable and are
// recomputed from the local CSV artifacts otherwise.
package dashboard

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

const (
	ViewDimCustomer = "dim_customer"
	ViewDimProduct  = "dim_product"
	ViewFactOrder   = "fact_order"
	ViewSalesByDay  = "sales_by_day"
)

var ViewNames = []string{ViewDimCustomer, ViewDimProduct, ViewFactOrder, ViewSalesByDay}

// Provider resolves a view to at most limit rows.
type Provider interface {
	Mode() string
	View(ctx context.Context, name string, limit int) ([]map[string]any, error)
}

var errUnknownView = errors.New("unknown view")

// FactRow is one order item joined to its order. Cancelled orders keep their
// stored order_total, but their fact rows carry zero quantity and sales.
type FactRow struct {
	OrderItemID int64
	OrderID     int64
	CustomerID  int64
	ProductID   int64
	OrderDate   time.Time
	Quantity    int64
	SalesAmount float64
}

// BuildFact joins items to orders in item order, zeroing the contribution of
// CANCELLED orders. Items referencing an unknown order are dropped.
func BuildFact(orders []dataset.Order, items []dataset.OrderItem) []FactRow {
	byID := make(map[int64]dataset.Order, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}
	fact := make([]FactRow, 0, len(items))
	for _, it := range items {
		o, ok := byID[it.OrderID]
		if !ok {
			continue
		}
		row := FactRow{
			OrderItemID: it.OrderItemID,
			OrderID:     it.OrderID,
			CustomerID:  o.CustomerID,
			ProductID:   it.ProductID,
			OrderDate:   o.OrderDate,
			Quantity:    it.Quantity,
			SalesAmount: it.ExtendedPrice,
		}
		if o.Status == dataset.StatusCancelled {
			row.Quantity = 0
			row.SalesAmount = 0
		}
		fact = append(fact, row)
	}
	return fact
}

type DailySales struct {
	Day           string
	TotalSales    float64
	TotalQuantity int64
}

// SalesByDay aggregates fact rows by calendar day of order_date, ascending.
func SalesByDay(fact []FactRow) []DailySales {
	sums := make(map[string]*DailySales)
	for _, row := range fact {
		day := row.OrderDate.Format("2006-01-02")
		agg, ok := sums[day]
		if !ok {
			agg = &DailySales{Day: day}
			sums[day] = agg
		}
		agg.TotalSales += row.SalesAmount
		agg.TotalQuantity += row.Quantity
	}
	out := make([]DailySales, 0, len(sums))
	for _, agg := range sums {
		agg.TotalSales = math.Round(agg.TotalSales*100) / 100
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
