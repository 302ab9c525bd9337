// ABOUTME: Root Cobra command for the ordermart CLI.
// ABOUTME: Loads configuration and initializes logging in PersistentPreRunE.
package main

import (
	"github.com/spf13/cobra"

	"ordermart/internal/config"
	"ordermart/internal/logging"
	"ordermart/pkg/version"
)

var (
	// Global flags
	cfgFile   string
	inputDir  string
	outputDir string
	dbPath    string
	logLevel  string

	// Global config, populated by initConfig
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ordermart",
	Short: "Batch ETL over customer, order, and order item CSVs",
	Long: `ordermart runs a small layered ETL pipeline over three related CSV
sources: customers, orders, and order items.

Each run cleans the inputs, loads them into staging tables in an embedded
SQLite database (raw layer), joins and aggregates them into an order-level
view (silver layer), materializes fact, dimension, and monthly rollup tables
(gold layer), and exports the results back to CSV.

QUICK START:

  $ ordermart seed              # Generate sample input CSVs
  $ ordermart run               # Run the full pipeline
  $ ordermart show monthly_sales_summary

LAYOUT:

  input/    source CSVs (stg_customers, stg_orders, stg_order_items)
  raw/      cleaned CSV copies + staging SQL artifacts
  silver/   transform view SQL artifact
  gold/     summary table SQL artifacts
  output/   exported result CSVs`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./ordermart.yaml)")
	rootCmd.PersistentFlags().StringVar(&inputDir, "input-dir", "",
		"directory containing the source CSV files")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"directory for exported result CSVs")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"path of the embedded SQLite database file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// CLI flags take precedence over config file values.
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
