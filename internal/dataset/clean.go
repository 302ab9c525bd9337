// ABOUTME: Cleaning pass applied to every staging dataset before loading.
// ABOUTME: Trims column names, drops incomplete rows, drops exact duplicates.
package dataset

import "strings"

// Clean returns a new dataset with column names stripped of surrounding
// whitespace, rows containing any empty cell removed, and exact duplicate
// rows removed keeping the first occurrence. Row order is preserved among
// survivors. Applying Clean twice is the same as applying it once.
func Clean(d *Dataset) *Dataset {
	out := &Dataset{
		Columns: make([]string, len(d.Columns)),
		Rows:    make([][]string, 0, len(d.Rows)),
	}
	for i, col := range d.Columns {
		out.Columns[i] = strings.TrimSpace(col)
	}

	seen := make(map[string]struct{}, len(d.Rows))
	for _, row := range d.Rows {
		if hasMissing(row) {
			continue
		}
		// \x1f never appears in CSV cell data, so the join is collision-free.
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out
}

func hasMissing(row []string) bool {
	for _, cell := range row {
		if cell == "" {
			return true
		}
	}
	return false
}
