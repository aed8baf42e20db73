package generate

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// ErrInvalidParameter rejects generation inputs before any record is built;
// callers never see a partially generated entity set.
var ErrInvalidParameter = errors.New("invalid parameter")

// Default seeds, one per entity family.
const (
	DefaultCustomerSeed int64 = 42
	DefaultProductSeed  int64 = 43
	DefaultOrderSeed    int64 = 44
)

const (
	customerHistory = 2 * 365 * 24 * time.Hour // created_at window
	orderHistory    = 18 * 30 * 24 * time.Hour // order_date window
)

// Customers generates count customers with ids 1..count.
func Customers(count int, seed int64) ([]dataset.Customer, error) {
	return CustomersAt(count, seed, time.Now().UTC())
}

// CustomersAt is Customers with an explicit upper bound for created_at,
// so two calls with identical inputs produce identical records.
func CustomersAt(count int, seed int64, now time.Time) ([]dataset.Customer, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: customer count %d", ErrInvalidParameter, count)
	}
	src := NewSource(seed)
	start := now.Add(-customerHistory)
	out := make([]dataset.Customer, 0, count)
	for id := 1; id <= count; id++ {
		first := src.FirstName()
		last := src.LastName()
		out = append(out, dataset.Customer{
			CustomerID: int64(id),
			FirstName:  first,
			LastName:   last,
			Email:      strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, id)),
			Phone:      src.Phone(),
			Address:    stripCommas(src.Street()),
			City:       stripCommas(src.City()),
			State:      src.StateAbr(),
			PostalCode: src.Zip(),
			Country:    dataset.Country,
			CreatedAt:  src.TimeBetween(start, now),
		})
	}
	return out, nil
}

// Products generates count products with ids 1..count.
func Products(count int, seed int64) ([]dataset.Product, error) {
	return ProductsAt(count, seed, time.Now().UTC())
}

func ProductsAt(count int, seed int64, now time.Time) ([]dataset.Product, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: product count %d", ErrInvalidParameter, count)
	}
	src := NewSource(seed)
	start := now.Add(-customerHistory)
	out := make([]dataset.Product, 0, count)
	for id := 1; id <= count; id++ {
		price := round2(src.Float(5.0, 500.0))
		cost := round2(price * src.Float(0.4, 0.8))
		out = append(out, dataset.Product{
			ProductID:   int64(id),
			ProductName: stripCommas(src.ProductName()),
			Category:    Choice(src, dataset.Categories),
			Price:       price,
			Cost:        cost,
			Active:      src.Chance(0.95),
			CreatedAt:   src.TimeBetween(start, now),
		})
	}
	return out, nil
}

// Orders generates orderCount orders with ids 1..orderCount and their items.
// Item ids come from a single counter that starts at 1 and never resets
// within the pass, so they are strictly increasing across the whole item set.
func Orders(orderCount, maxItemsPerOrder, customerCount, productCount int, seed int64) ([]dataset.Order, []dataset.OrderItem, error) {
	return OrdersAt(orderCount, maxItemsPerOrder, customerCount, productCount, seed, time.Now().UTC())
}

func OrdersAt(orderCount, maxItemsPerOrder, customerCount, productCount int, seed int64, now time.Time) ([]dataset.Order, []dataset.OrderItem, error) {
	if orderCount < 0 {
		return nil, nil, fmt.Errorf("%w: order count %d", ErrInvalidParameter, orderCount)
	}
	if maxItemsPerOrder < 1 {
		return nil, nil, fmt.Errorf("%w: max items per order %d", ErrInvalidParameter, maxItemsPerOrder)
	}
	if orderCount > 0 && customerCount < 1 {
		return nil, nil, fmt.Errorf("%w: %d orders requested with no customers to reference", ErrInvalidParameter, orderCount)
	}
	if orderCount > 0 && productCount < 1 {
		return nil, nil, fmt.Errorf("%w: %d orders requested with no products to reference", ErrInvalidParameter, orderCount)
	}

	src := NewSource(seed)
	start := now.Add(-orderHistory)
	orders := make([]dataset.Order, 0, orderCount)
	items := make([]dataset.OrderItem, 0, orderCount)
	itemID := int64(1)
	for id := 1; id <= orderCount; id++ {
		order := dataset.Order{
			OrderID:    int64(id),
			CustomerID: int64(src.Int(1, customerCount)),
			OrderDate:  src.TimeBetween(start, now),
			Status:     Choice(src, dataset.Statuses),
		}
		for n := src.Int(1, maxItemsPerOrder); n > 0; n-- {
			quantity := int64(src.Int(1, 5))
			unitPrice := round2(src.Float(5.0, 500.0))
			extended := round2(float64(quantity) * unitPrice)
			items = append(items, dataset.OrderItem{
				OrderItemID:   itemID,
				OrderID:       order.OrderID,
				ProductID:     int64(src.Int(1, productCount)),
				Quantity:      quantity,
				UnitPrice:     unitPrice,
				ExtendedPrice: extended,
			})
			itemID++
			order.OrderTotal += extended
		}
		order.OrderTotal = round2(order.OrderTotal)
		orders = append(orders, order)
	}
	return orders, items, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Commas would break the tabular output, so free-text fields drop them.
func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
