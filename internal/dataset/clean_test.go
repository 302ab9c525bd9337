// ABOUTME: Tests for the cleaning pass.
// ABOUTME: Covers header trimming, missing-value rows, duplicates, idempotence.
package dataset

import (
	"reflect"
	"testing"
)

func TestCleanTrimsColumnNames(t *testing.T) {
	d := &Dataset{
		Columns: []string{"  customer_id", "first_name ", "\tlast_name\t", "signup_date"},
	}

	got := Clean(d)

	want := []string{"customer_id", "first_name", "last_name", "signup_date"}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Errorf("Columns = %v, want %v", got.Columns, want)
	}
}

func TestCleanDropsRowsWithMissingValues(t *testing.T) {
	d := &Dataset{
		Columns: []string{"order_id", "status"},
		Rows: [][]string{
			{"1", "delivered"},
			{"2", ""},
			{"", "shipped"},
			{"4", "cancelled"},
		},
	}

	got := Clean(d)

	want := [][]string{
		{"1", "delivered"},
		{"4", "cancelled"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("Rows = %v, want %v", got.Rows, want)
	}
}

func TestCleanDropsExactDuplicatesKeepingFirst(t *testing.T) {
	d := &Dataset{
		Columns: []string{"a", "b"},
		Rows: [][]string{
			{"1", "x"},
			{"2", "y"},
			{"1", "x"},
			{"3", "z"},
			{"2", "y"},
		},
	}

	got := Clean(d)

	want := [][]string{
		{"1", "x"},
		{"2", "y"},
		{"3", "z"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("Rows = %v, want %v", got.Rows, want)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	d := &Dataset{
		Columns: []string{" a", "b "},
		Rows: [][]string{
			{"1", "x"},
			{"1", "x"},
			{"", "y"},
			{"2", "z"},
		},
	}

	once := Clean(d)
	twice := Clean(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Clean not idempotent: once = %v, twice = %v", once, twice)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	got := Clean(&Dataset{})

	if len(got.Columns) != 0 {
		t.Errorf("expected no columns, got %v", got.Columns)
	}
	if len(got.Rows) != 0 {
		t.Errorf("expected no rows, got %v", got.Rows)
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	d := &Dataset{
		Columns: []string{" a "},
		Rows:    [][]string{{"1"}, {"1"}},
	}

	Clean(d)

	if d.Columns[0] != " a " {
		t.Errorf("input columns mutated: %v", d.Columns)
	}
	if len(d.Rows) != 2 {
		t.Errorf("input rows mutated: %v", d.Rows)
	}
}
