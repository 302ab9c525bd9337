// ABOUTME: Schema descriptors for logical datasets.
// ABOUTME: One descriptor drives CSV validation, staging DDL, and artifacts.
package dataset

import (
	"fmt"
	"strings"
)

// Column is a named, typed column in a logical dataset. Type uses SQL type
// names (INT, TEXT, DATE, DECIMAL(10, 2)).
type Column struct {
	Name string
	Type string
}

// Schema describes one logical dataset: its name and ordered columns. The
// same descriptor is used to validate CSV headers on load and to generate
// the staging table DDL, so the two can never drift apart.
type Schema struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the ordered column names.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks that a dataset's header matches the schema's columns
// exactly, in order. Returns a *SchemaMismatchError on any difference.
func (s Schema) Validate(d *Dataset) error {
	want := s.ColumnNames()
	if len(d.Columns) != len(want) {
		return &SchemaMismatchError{Dataset: s.Name, Want: want, Got: d.Columns}
	}
	for i, col := range d.Columns {
		if col != want[i] {
			return &SchemaMismatchError{Dataset: s.Name, Want: want, Got: d.Columns}
		}
	}
	return nil
}

// SchemaMismatchError reports a CSV header that does not match the declared
// schema for its logical dataset.
type SchemaMismatchError struct {
	Dataset string
	Want    []string
	Got     []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch for %s: want columns [%s], got [%s]",
		e.Dataset, strings.Join(e.Want, ", "), strings.Join(e.Got, ", "))
}
