// ABOUTME: End-to-end tests for the pipeline driver over temp-dir fixtures.
// ABOUTME: Covers the happy path, missing inputs, artifacts, and idempotence.
package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermart/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		InputDir:  filepath.Join(dir, "input"),
		RawDir:    filepath.Join(dir, "raw"),
		SilverDir: filepath.Join(dir, "silver"),
		GoldDir:   filepath.Join(dir, "gold"),
		OutputDir: filepath.Join(dir, "output"),
		DBPath:    filepath.Join(dir, "etl_pipeline.db"),
		LogLevel:  "error",
	}
}

func writeInput(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.InputDir, 0750))
	require.NoError(t, os.WriteFile(cfg.InputPath(name), []byte(content), 0600))
}

// writeScenarioInputs stages the single delivered order scenario plus a
// duplicate row and an incomplete row that the cleaner must strip.
func writeScenarioInputs(t *testing.T, cfg *config.Config) {
	t.Helper()
	writeInput(t, cfg, "stg_customers",
		"customer_id,first_name,last_name,signup_date\n"+
			"1,Jo,Lee,2020-01-01\n"+
			"1,Jo,Lee,2020-01-01\n"+ // exact duplicate
			"2,Ann,,2020-02-15\n") // missing last name
	writeInput(t, cfg, "stg_orders",
		"order_id,customer_id,order_date,status\n"+
			"10,1,2021-05-03,delivered\n")
	writeInput(t, cfg, "stg_order_items",
		"item_id,order_id,product_id,quantity,unit_price\n"+
			"100,10,5,2,9.99\n")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunHappyPath(t *testing.T) {
	cfg := testConfig(t)
	writeScenarioInputs(t, cfg)

	p := New(cfg)
	require.Equal(t, StateNotStarted, p.State())
	require.NoError(t, p.Run())
	assert.Equal(t, StateDone, p.State())

	transformed := readFile(t, cfg.OutputPath("transformed_orders"))
	assert.Equal(t,
		"order_id,customer_name,order_date,total_items,total_amount,status\n"+
			"10,Jo Lee,2021-05-03,2,19.98,delivered\n",
		transformed)

	fact := readFile(t, cfg.OutputPath("fact_orders_summary"))
	assert.Equal(t, transformed, fact)

	dim := readFile(t, cfg.OutputPath("dim_customers"))
	assert.Equal(t,
		"customer_id,customer_name,signup_date\n"+
			"1,Jo Lee,2020-01-01\n",
		dim)

	monthly := readFile(t, cfg.OutputPath("monthly_sales_summary"))
	assert.Equal(t,
		"month,total_revenue\n"+
			"2021-05,19.98\n",
		monthly)
}

func TestRunWritesCleanedCopies(t *testing.T) {
	cfg := testConfig(t)
	writeScenarioInputs(t, cfg)

	require.NoError(t, New(cfg).Run())

	// Duplicate and incomplete customer rows are gone from the cleaned copy.
	cleaned := readFile(t, cfg.CleanedPath("stg_customers"))
	assert.Equal(t,
		"customer_id,first_name,last_name,signup_date\n"+
			"1,Jo,Lee,2020-01-01\n",
		cleaned)
}

func TestRunWritesSQLArtifacts(t *testing.T) {
	cfg := testConfig(t)
	writeScenarioInputs(t, cfg)

	require.NoError(t, New(cfg).Run())

	ddl := readFile(t, filepath.Join(cfg.RawSQLDir(), "stg_orders.sql"))
	assert.Contains(t, ddl, "CREATE TABLE stg_orders")
	assert.Contains(t, ddl, "order_date DATE")

	load := readFile(t, filepath.Join(cfg.RawSQLDir(), "load_stg_orders.sql"))
	assert.Contains(t, load, "COPY stg_orders FROM")
	assert.Contains(t, load, cfg.InputPath("stg_orders"))

	view := readFile(t, filepath.Join(cfg.SilverSQLDir(), "transformed_orders_view.sql"))
	assert.Contains(t, view, "CREATE OR REPLACE VIEW silver.transformed_orders")
	assert.Contains(t, view, "o.status = 'delivered'")

	for _, name := range []string{"fact_orders_summary.sql", "dim_customers.sql", "monthly_sales_summary.sql"} {
		assert.FileExists(t, filepath.Join(cfg.GoldSQLDir(), name))
	}
}

func TestRunTrimsHeaderWhitespace(t *testing.T) {
	cfg := testConfig(t)
	writeScenarioInputs(t, cfg)
	// Headers with stray whitespace must clean up to the declared schema.
	writeInput(t, cfg, "stg_orders",
		" order_id,customer_id ,order_date,  status\n"+
			"10,1,2021-05-03,delivered\n")

	require.NoError(t, New(cfg).Run())
}

func TestRunMissingInputHaltsBeforeDatabase(t *testing.T) {
	cfg := testConfig(t)
	writeInput(t, cfg, "stg_customers",
		"customer_id,first_name,last_name,signup_date\n1,Jo,Lee,2020-01-01\n")
	writeInput(t, cfg, "stg_order_items",
		"item_id,order_id,product_id,quantity,unit_price\n100,10,5,2,9.99\n")
	// stg_orders.csv deliberately absent.

	p := New(cfg)
	err := p.Run()
	require.Error(t, err)

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "stg_orders", missing.Dataset)
	assert.Equal(t, cfg.InputPath("stg_orders"), missing.Path)
	assert.Equal(t, StateFailed, p.State())

	// No staging table was created and the database file was never written.
	assert.NoFileExists(t, cfg.DBPath)
	assert.NoFileExists(t, cfg.OutputPath("transformed_orders"))
}

func TestRunSchemaMismatchFails(t *testing.T) {
	cfg := testConfig(t)
	writeScenarioInputs(t, cfg)
	writeInput(t, cfg, "stg_orders",
		"order_id,cust,order_date,status\n10,1,2021-05-03,delivered\n")

	err := New(cfg).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema mismatch for stg_orders")
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	writeScenarioInputs(t, cfg)

	require.NoError(t, New(cfg).Run())

	first := map[string]string{}
	for _, name := range []string{"transformed_orders", "fact_orders_summary", "dim_customers", "monthly_sales_summary"} {
		first[name] = readFile(t, cfg.OutputPath(name))
	}

	require.NoError(t, New(cfg).Run())

	for name, want := range first {
		assert.Equal(t, want, readFile(t, cfg.OutputPath(name)), "output %s changed between runs", name)
	}
}

func TestMissingInputErrorMessage(t *testing.T) {
	err := &MissingInputError{Dataset: "stg_orders", Path: "input/stg_orders.csv"}
	assert.Equal(t, "missing input file for stg_orders: input/stg_orders.csv", err.Error())
}

func TestExportWriteErrorWraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ExportWriteError{Path: "output/dim_customers.csv", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "output/dim_customers.csv")
}
