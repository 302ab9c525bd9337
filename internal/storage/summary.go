// ABOUTME: Gold layer: fact, dimension, and rollup table materializations.
// ABOUTME: Each is an idempotent drop-and-recreate snapshot, fixed until rerun.
package storage

import "fmt"

// Gold-layer table names.
const (
	FactOrdersSummaryTable   = "gold_fact_orders_summary"
	DimCustomersTable        = "gold_dim_customers"
	MonthlySalesSummaryTable = "gold_monthly_sales_summary"
)

// MaterializeFactOrdersSummary snapshots the transformed orders view into a
// physical fact table. The snapshot does not track later staging changes.
func (d *DB) MaterializeFactOrdersSummary() error {
	return d.materialize(FactOrdersSummaryTable, `
CREATE TABLE `+FactOrdersSummaryTable+` AS
SELECT * FROM `+TransformedOrdersView)
}

// MaterializeDimCustomers builds the customer dimension from the customer
// staging table. Every customer appears, regardless of order status.
func (d *DB) MaterializeDimCustomers() error {
	return d.materialize(DimCustomersTable, `
CREATE TABLE `+DimCustomersTable+` AS
SELECT
    customer_id,
    first_name || ' ' || last_name AS customer_name,
    signup_date
FROM
    raw_stg_customers`)
}

// MaterializeMonthlySalesSummary rolls transformed orders up to calendar
// month grain, ordered ascending by month.
func (d *DB) MaterializeMonthlySalesSummary() error {
	return d.materialize(MonthlySalesSummaryTable, `
CREATE TABLE `+MonthlySalesSummaryTable+` AS
SELECT
    strftime('%Y-%m', order_date) AS month,
    ROUND(SUM(total_amount), 2) AS total_revenue
FROM
    `+TransformedOrdersView+`
GROUP BY
    strftime('%Y-%m', order_date)
ORDER BY
    month`)
}

func (d *DB) materialize(table, createSQL string) error {
	if _, err := d.db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	if _, err := d.db.Exec(createSQL); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

// Portable gold-layer DDL, written as documentation artifacts.
const (
	FactOrdersSummarySQL = `CREATE TABLE gold.fact_orders_summary AS
SELECT * FROM silver.transformed_orders;
`

	DimCustomersSQL = `CREATE TABLE gold.dim_customers AS
SELECT
    customer_id,
    first_name || ' ' || last_name AS customer_name,
    signup_date
FROM
    raw.stg_customers;
`

	MonthlySalesSummarySQL = `CREATE TABLE gold.monthly_sales_summary AS
SELECT
    TO_CHAR(order_date, 'YYYY-MM') AS month,
    ROUND(SUM(total_amount), 2) AS total_revenue
FROM
    gold.fact_orders_summary
GROUP BY
    TO_CHAR(order_date, 'YYYY-MM')
ORDER BY
    month;
`
)
