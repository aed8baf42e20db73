package dataset

import "time"

type OrderStatus string

const (
	StatusNew       OrderStatus = "NEW"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Statuses is the closed set orders are sampled from.
var Statuses = []OrderStatus{StatusNew, StatusShipped, StatusDelivered, StatusCancelled}

// Categories is the closed set products are sampled from.
var Categories = []string{"Electronics", "Home", "Garden", "Sports", "Clothing", "Toys"}

// Country is constant for all generated customers.
const Country = "USA"

type Customer struct {
	CustomerID int64
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
	CreatedAt  time.Time
}

type Product struct {
	ProductID   int64
	ProductName string
	Category    string
	Price       float64
	Cost        float64
	Active      bool
	CreatedAt   time.Time
}

type Order struct {
	OrderID    int64
	CustomerID int64
	OrderDate  time.Time
	Status     OrderStatus
	OrderTotal float64
}

type OrderItem struct {
	OrderItemID   int64
	OrderID       int64
	ProductID     int64
	Quantity      int64
	UnitPrice     float64
	ExtendedPrice float64
}

// Dataset holds one complete generation pass. The four slices are produced
// together and never partially regenerated.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}

// Rows counts records across all four entities.
func (d Dataset) Rows() int {
	return len(d.Customers) + len(d.Products) + len(d.Orders) + len(d.OrderItems)
}
