package dataset

// Kind is the value type of a column. Writers map kinds to format-native
// types; they never inspect runtime values to decide typing.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindTime
)

type Column struct {
	Name string
	Kind Kind
}

// Table is one entity's records projected onto its fixed column schema,
// in generation order. Row values are positionally aligned with Columns.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

var CustomerColumns = []Column{
	{"customer_id", KindInt},
	{"first_name", KindString},
	{"last_name", KindString},
	{"email", KindString},
	{"phone", KindString},
	{"address", KindString},
	{"city", KindString},
	{"state", KindString},
	{"postal_code", KindString},
	{"country", KindString},
	{"created_at", KindTime},
}

var ProductColumns = []Column{
	{"product_id", KindInt},
	{"product_name", KindString},
	{"category", KindString},
	{"price", KindFloat},
	{"cost", KindFloat},
	{"active", KindBool},
	{"created_at", KindTime},
}

var OrderColumns = []Column{
	{"order_id", KindInt},
	{"customer_id", KindInt},
	{"order_date", KindTime},
	{"status", KindString},
	{"order_total", KindFloat},
}

var OrderItemColumns = []Column{
	{"order_item_id", KindInt},
	{"order_id", KindInt},
	{"product_id", KindInt},
	{"quantity", KindInt},
	{"unit_price", KindFloat},
	{"extended_price", KindFloat},
}

func CustomersTable(rows []Customer) Table {
	t := Table{Name: "customers", Columns: CustomerColumns, Rows: make([][]any, 0, len(rows))}
	for _, c := range rows {
		t.Rows = append(t.Rows, []any{
			c.CustomerID, c.FirstName, c.LastName, c.Email, c.Phone,
			c.Address, c.City, c.State, c.PostalCode, c.Country, c.CreatedAt,
		})
	}
	return t
}

func ProductsTable(rows []Product) Table {
	t := Table{Name: "products", Columns: ProductColumns, Rows: make([][]any, 0, len(rows))}
	for _, p := range rows {
		t.Rows = append(t.Rows, []any{
			p.ProductID, p.ProductName, p.Category, p.Price, p.Cost, p.Active, p.CreatedAt,
		})
	}
	return t
}

func OrdersTable(rows []Order) Table {
	t := Table{Name: "orders", Columns: OrderColumns, Rows: make([][]any, 0, len(rows))}
	for _, o := range rows {
		t.Rows = append(t.Rows, []any{
			o.OrderID, o.CustomerID, o.OrderDate, string(o.Status), o.OrderTotal,
		})
	}
	return t
}

func OrderItemsTable(rows []OrderItem) Table {
	t := Table{Name: "order_items", Columns: OrderItemColumns, Rows: make([][]any, 0, len(rows))}
	for _, it := range rows {
		t.Rows = append(t.Rows, []any{
			it.OrderItemID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.ExtendedPrice,
		})
	}
	return t
}

// Tables returns the four entity tables in load order.
func (d Dataset) Tables() []Table {
	return []Table{
		CustomersTable(d.Customers),
		ProductsTable(d.Products),
		OrdersTable(d.Orders),
		OrderItemsTable(d.OrderItems),
	}
}
