package generate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestCustomersDeterministic(t *testing.T) {
	a, err := CustomersAt(50, DefaultCustomerSeed, testNow)
	require.NoError(t, err)
	b, err := CustomersAt(50, DefaultCustomerSeed, testNow)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCustomersShape(t *testing.T) {
	customers, err := CustomersAt(25, DefaultCustomerSeed, testNow)
	require.NoError(t, err)
	require.Len(t, customers, 25)

	start := testNow.Add(-customerHistory)
	for i, c := range customers {
		assert.Equal(t, int64(i+1), c.CustomerID)
		assert.Equal(t, "USA", c.Country)
		assert.Contains(t, c.Email, "@example.com")
		assert.Equal(t, strings.ToLower(c.Email), c.Email)
		assert.NotContains(t, c.Address, ",")
		assert.NotContains(t, c.City, ",")
		assert.False(t, c.CreatedAt.Before(start))
		assert.False(t, c.CreatedAt.After(testNow))
	}
}

func TestCustomersEmpty(t *testing.T) {
	customers, err := CustomersAt(0, DefaultCustomerSeed, testNow)
	require.NoError(t, err)
	require.Empty(t, customers)
}

func TestCustomersNegativeCount(t *testing.T) {
	_, err := CustomersAt(-1, DefaultCustomerSeed, testNow)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestProductsDeterministic(t *testing.T) {
	a, err := ProductsAt(50, DefaultProductSeed, testNow)
	require.NoError(t, err)
	b, err := ProductsAt(50, DefaultProductSeed, testNow)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestProductsRanges(t *testing.T) {
	products, err := ProductsAt(200, DefaultProductSeed, testNow)
	require.NoError(t, err)
	require.Len(t, products, 200)

	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ProductID)
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.LessOrEqual(t, p.Price, 500.0)
		assert.GreaterOrEqual(t, p.Cost, p.Price*0.4-0.01)
		assert.LessOrEqual(t, p.Cost, p.Price*0.8+0.01)
	}
}

// The reference seed draws categories only from the fixed closed set.
func TestProductsCategorySeed43(t *testing.T) {
	products, err := ProductsAt(5, 43, testNow)
	require.NoError(t, err)
	require.Len(t, products, 5)

	first, err := ProductsAt(5, 43, testNow)
	require.NoError(t, err)
	for i, p := range products {
		assert.Contains(t, dataset.Categories, p.Category)
		assert.Equal(t, first[i].Category, p.Category)
	}
}

func TestOrdersReferentialIntegrity(t *testing.T) {
	const (
		orderCount    = 500
		customerCount = 40
		productCount  = 30
	)
	orders, items, err := OrdersAt(orderCount, 5, customerCount, productCount, DefaultOrderSeed, testNow)
	require.NoError(t, err)
	require.Len(t, orders, orderCount)

	orderIDs := make(map[int64]bool, orderCount)
	for i, o := range orders {
		assert.Equal(t, int64(i+1), o.OrderID)
		assert.GreaterOrEqual(t, o.CustomerID, int64(1))
		assert.LessOrEqual(t, o.CustomerID, int64(customerCount))
		assert.Contains(t, dataset.Statuses, o.Status)
		orderIDs[o.OrderID] = true
	}
	for i, it := range items {
		assert.Equal(t, int64(i+1), it.OrderItemID, "order_item_id must be contiguous from 1")
		assert.True(t, orderIDs[it.OrderID], "item references unknown order %d", it.OrderID)
		assert.GreaterOrEqual(t, it.ProductID, int64(1))
		assert.LessOrEqual(t, it.ProductID, int64(productCount))
		assert.GreaterOrEqual(t, it.Quantity, int64(1))
		assert.LessOrEqual(t, it.Quantity, int64(5))
	}
}

func TestOrderTotalsMatchItems(t *testing.T) {
	orders, items, err := OrdersAt(300, 4, 50, 50, DefaultOrderSeed, testNow)
	require.NoError(t, err)

	sums := make(map[int64]float64)
	for _, it := range items {
		assert.InDelta(t, float64(it.Quantity)*it.UnitPrice, it.ExtendedPrice, 0.01)
		sums[it.OrderID] += it.ExtendedPrice
	}
	for _, o := range orders {
		assert.InDelta(t, sums[o.OrderID], o.OrderTotal, 0.01, "order %d", o.OrderID)
	}
}

func TestOrdersDeterministic(t *testing.T) {
	ordersA, itemsA, err := OrdersAt(100, 5, 20, 20, DefaultOrderSeed, testNow)
	require.NoError(t, err)
	ordersB, itemsB, err := OrdersAt(100, 5, 20, 20, DefaultOrderSeed, testNow)
	require.NoError(t, err)
	require.Equal(t, ordersA, ordersB)
	require.Equal(t, itemsA, itemsB)
}

func TestOrdersSmallScenario(t *testing.T) {
	orders, items, err := OrdersAt(3, 2, 10, 10, 44, testNow)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.GreaterOrEqual(t, len(items), 3)
	require.LessOrEqual(t, len(items), 6)
	for i, it := range items {
		require.Equal(t, int64(i+1), it.OrderItemID)
	}
}

func TestOrdersInvalidParameters(t *testing.T) {
	cases := []struct {
		name                                 string
		orders, maxItems, customers, products int
	}{
		{"zero max items", 10, 0, 5, 5},
		{"negative max items", 10, -3, 5, 5},
		{"no customers", 10, 5, 0, 5},
		{"no products", 10, 5, 5, 0},
		{"negative orders", -1, 5, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, i, err := OrdersAt(tc.orders, tc.maxItems, tc.customers, tc.products, DefaultOrderSeed, testNow)
			require.ErrorIs(t, err, ErrInvalidParameter)
			require.Nil(t, o)
			require.Nil(t, i)
		})
	}
}

// zero orders with zero customers/products is fine: nothing references anything
func TestOrdersZeroCount(t *testing.T) {
	orders, items, err := OrdersAt(0, 5, 0, 0, DefaultOrderSeed, testNow)
	require.NoError(t, err)
	require.Empty(t, orders)
	require.Empty(t, items)
}
