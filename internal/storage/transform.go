// ABOUTME: Silver layer: the transformed orders view over the staging tables.
// ABOUTME: A logical view, recomputed on every read, never materialized here.
package storage

import "fmt"

// TransformedOrdersView is the name of the silver-layer view.
const TransformedOrdersView = "silver_transformed_orders"

// Inner joins mean orders without a matching customer or without any line
// item are excluded, as are orders whose status is not exactly "delivered".
// That exclusion is intended business logic, not a defect: non-delivered
// orders never reach the order-level summaries, though their customers still
// appear in the customer dimension.
const createTransformedOrdersView = `
CREATE VIEW ` + TransformedOrdersView + ` AS
SELECT
    o.order_id,
    c.first_name || ' ' || c.last_name AS customer_name,
    o.order_date,
    SUM(oi.quantity) AS total_items,
    ROUND(SUM(oi.quantity * oi.unit_price), 2) AS total_amount,
    o.status
FROM
    raw_stg_orders o
JOIN
    raw_stg_customers c ON o.customer_id = c.customer_id
JOIN
    raw_stg_order_items oi ON o.order_id = oi.order_id
WHERE
    o.status = 'delivered'
GROUP BY
    o.order_id, customer_name, o.order_date, o.status
`

// DefineTransformView recreates the transformed orders view. Idempotent:
// any previous definition is dropped first.
func (d *DB) DefineTransformView() error {
	if _, err := d.db.Exec("DROP VIEW IF EXISTS " + TransformedOrdersView); err != nil {
		return fmt.Errorf("drop view %s: %w", TransformedOrdersView, err)
	}
	if _, err := d.db.Exec(createTransformedOrdersView); err != nil {
		return fmt.Errorf("create view %s: %w", TransformedOrdersView, err)
	}
	return nil
}

// TransformedOrdersViewSQL is the portable form of the view definition,
// written as a silver-layer documentation artifact.
const TransformedOrdersViewSQL = `CREATE OR REPLACE VIEW silver.transformed_orders AS
SELECT
    o.order_id,
    c.first_name || ' ' || c.last_name AS customer_name,
    o.order_date,
    SUM(oi.quantity) AS total_items,
    ROUND(SUM(oi.quantity * oi.unit_price), 2) AS total_amount,
    o.status
FROM
    raw.stg_orders o
JOIN
    raw.stg_customers c ON o.customer_id = c.customer_id
JOIN
    raw.stg_order_items oi ON o.order_id = oi.order_id
WHERE
    o.status = 'delivered'
GROUP BY
    o.order_id, customer_name, o.order_date, o.status;
`
