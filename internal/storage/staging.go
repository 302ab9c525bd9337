// ABOUTME: Raw layer: materializes cleaned datasets as staging tables.
// ABOUTME: Full replace semantics; each run discards the previous contents.
package storage

import (
	"fmt"
	"strings"

	"ordermart/internal/dataset"
)

// ReplaceStaging drops and recreates the staging table for the given schema
// and inserts every row of the cleaned dataset. The drop, create, and inserts
// run in one transaction so a failed load never leaves a half-written table.
func (d *DB) ReplaceStaging(s dataset.Schema, data *dataset.Dataset) error {
	table := StagingTable(s.Name)

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin load of %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	if _, err := tx.Exec(CreateTableSQL(table, s)); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(s.Columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(s.ColumnNames(), ", "), placeholders)

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	for _, row := range data.Rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load of %s: %w", table, err)
	}
	return nil
}

// CreateTableSQL generates the CREATE TABLE statement for a schema under the
// given table name. Used for both the physical staging tables and the
// documentation artifacts, so the DDL can never drift from the descriptors.
func CreateTableSQL(table string, s dataset.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", table)
	for i, c := range s.Columns {
		fmt.Fprintf(&b, "    %s %s", c.Name, c.Type)
		if i < len(s.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");\n")
	return b.String()
}

// CopySQL generates the portable COPY statement artifact describing how the
// staging table is loaded from its source file. Documentation only, never
// executed here.
func CopySQL(s dataset.Schema, srcPath string) string {
	return fmt.Sprintf("COPY %s FROM '%s' WITH DELIMITER ',';\n", s.Name, srcPath)
}
