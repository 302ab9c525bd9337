// ABOUTME: In-memory tabular dataset shared by the cleaner, loader, and exporter.
// ABOUTME: Rows are kept as string cells until the storage layer binds types.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dataset is an ordered collection of rows with named columns. Cells stay
// untyped strings so cleaning can run before any schema is applied.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// ReadCSV reads a CSV file into a Dataset. The first record is the header.
// An empty file yields an empty dataset with no columns.
func ReadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", path, err)
	}

	return &Dataset{Columns: header, Rows: rows}, nil
}

// WriteCSV writes a Dataset to path with the column names as the first row,
// overwriting any existing file. The parent directory must already exist;
// layout creation is the pipeline's job.
func WriteCSV(d *Dataset, path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(d.Columns); err != nil {
		_ = f.Close()
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	if err := w.WriteAll(d.Rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write rows of %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
