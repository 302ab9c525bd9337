// ABOUTME: Writes the generated SQL text artifacts for each layer.
// ABOUTME: Documentation and portability only; never re-executed by the pipeline.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"ordermart/internal/dataset"
	"ordermart/internal/storage"
)

// writeRawArtifacts emits the staging DDL and load statements for one
// dataset under raw/sql/. Both are generated from the schema descriptor.
func (p *Pipeline) writeRawArtifacts(s dataset.Schema, srcPath string) error {
	ddlPath := filepath.Join(p.cfg.RawSQLDir(), s.Name+".sql")
	if err := writeArtifact(ddlPath, storage.CreateTableSQL(s.Name, s)); err != nil {
		return err
	}

	loadPath := filepath.Join(p.cfg.RawSQLDir(), "load_"+s.Name+".sql")
	return writeArtifact(loadPath, storage.CopySQL(s, srcPath))
}

func (p *Pipeline) writeSilverArtifacts() error {
	path := filepath.Join(p.cfg.SilverSQLDir(), "transformed_orders_view.sql")
	return writeArtifact(path, storage.TransformedOrdersViewSQL)
}

func (p *Pipeline) writeGoldArtifacts() error {
	artifacts := map[string]string{
		"fact_orders_summary.sql":   storage.FactOrdersSummarySQL,
		"dim_customers.sql":         storage.DimCustomersSQL,
		"monthly_sales_summary.sql": storage.MonthlySalesSummarySQL,
	}
	for name, sql := range artifacts {
		if err := writeArtifact(filepath.Join(p.cfg.GoldSQLDir(), name), sql); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(path, sql string) error {
	if err := os.WriteFile(path, []byte(sql), 0644); err != nil {
		return fmt.Errorf("write SQL artifact %s: %w", path, err)
	}
	return nil
}
