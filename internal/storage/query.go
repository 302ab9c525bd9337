// ABOUTME: Reads full relations back out of the database as datasets.
// ABOUTME: Feeds the exporter and the show command.
package storage

import (
	"fmt"
	"strconv"

	"ordermart/internal/dataset"
)

// OutputRelation maps a logical result set name to the relation it reads.
type OutputRelation struct {
	Name     string
	Relation string
}

// OutputRelations lists the four exported result sets in export order.
func OutputRelations() []OutputRelation {
	return []OutputRelation{
		{Name: "transformed_orders", Relation: TransformedOrdersView},
		{Name: "fact_orders_summary", Relation: FactOrdersSummaryTable},
		{Name: "dim_customers", Relation: DimCustomersTable},
		{Name: "monthly_sales_summary", Relation: MonthlySalesSummaryTable},
	}
}

// ReadRelation reads the full current contents of a table or view into a
// Dataset. Relation names come from the fixed set defined in this package,
// never from user input.
func (d *DB) ReadRelation(relation string) (*dataset.Dataset, error) {
	rows, err := d.db.Query("SELECT * FROM " + relation)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", relation, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", relation, err)
	}

	ds := &dataset.Dataset{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", relation, err)
		}

		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", relation, err)
	}
	return ds, nil
}

// formatValue renders a SQLite value as its canonical CSV cell. Floats use
// the shortest representation that round-trips, so 19.98 stays "19.98".
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
