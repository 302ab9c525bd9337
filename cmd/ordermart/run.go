// ABOUTME: The run command: executes the full ETL pipeline once.
// ABOUTME: Missing inputs are a hard failure with a named warning and exit 1.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ordermart/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ETL pipeline",
	Long: `Run the complete pipeline: validate inputs, clean and load the
staging tables, define the transformed orders view, materialize the summary
tables, and export all four result sets to CSV.

The run is strictly sequential and fail-fast. A missing input file halts the
run before the database is touched and exits non-zero. Later failures leave
already-committed staging tables as written; rerunning replaces everything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pipeline.New(cfg)
		if err := p.Run(); err != nil {
			var missing *pipeline.MissingInputError
			if errors.As(err, &missing) {
				color.Yellow("⚠ Input file %s does not exist. Ensure all input files are available.", missing.Path)
			}
			return err
		}

		color.Green("✓ ETL pipeline completed successfully")
		fmt.Printf("Check the %s folder for the results.\n", cfg.OutputDir)
		return nil
	},
}
