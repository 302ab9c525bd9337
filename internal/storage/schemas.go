// ABOUTME: Schema descriptors for the three staging datasets.
// ABOUTME: Single source of truth for CSV headers, staging DDL, and artifacts.
package storage

import "ordermart/internal/dataset"

// Logical staging dataset names. Input files are <name>.csv, staging tables
// are raw_<name>.
const (
	DatasetCustomers  = "stg_customers"
	DatasetOrders     = "stg_orders"
	DatasetOrderItems = "stg_order_items"
)

var (
	// Customers describes the customer staging dataset.
	Customers = dataset.Schema{
		Name: DatasetCustomers,
		Columns: []dataset.Column{
			{Name: "customer_id", Type: "INT"},
			{Name: "first_name", Type: "TEXT"},
			{Name: "last_name", Type: "TEXT"},
			{Name: "signup_date", Type: "DATE"},
		},
	}

	// Orders describes the order staging dataset.
	Orders = dataset.Schema{
		Name: DatasetOrders,
		Columns: []dataset.Column{
			{Name: "order_id", Type: "INT"},
			{Name: "customer_id", Type: "INT"},
			{Name: "order_date", Type: "DATE"},
			{Name: "status", Type: "TEXT"},
		},
	}

	// OrderItems describes the order line item staging dataset.
	OrderItems = dataset.Schema{
		Name: DatasetOrderItems,
		Columns: []dataset.Column{
			{Name: "item_id", Type: "INT"},
			{Name: "order_id", Type: "INT"},
			{Name: "product_id", Type: "INT"},
			{Name: "quantity", Type: "INT"},
			{Name: "unit_price", Type: "DECIMAL(10, 2)"},
		},
	}
)

// StagingSchemas returns the staging schemas in load order.
func StagingSchemas() []dataset.Schema {
	return []dataset.Schema{Customers, OrderItems, Orders}
}

// StagingTable returns the physical staging table name for a logical dataset.
func StagingTable(name string) string {
	return "raw_" + name
}
