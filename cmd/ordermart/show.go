// ABOUTME: The show command: renders one result relation as an ASCII table.
// ABOUTME: Reads from the database written by the most recent run.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"ordermart/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <result>",
	Short: "Display a result table from the last run",
	Long: `Display one of the four result relations produced by the pipeline.

RESULTS:

  transformed_orders      order-level view (delivered orders only)
  fact_orders_summary     snapshot of the view at materialization time
  dim_customers           all customers with full name and signup date
  monthly_sales_summary   revenue rolled up by calendar month

Requires a prior 'ordermart run' against the same database.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: resultNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		relation := ""
		for _, rel := range storage.OutputRelations() {
			if rel.Name == name {
				relation = rel.Relation
				break
			}
		}
		if relation == "" {
			return fmt.Errorf("unknown result %q (use %s)",
				name, strings.Join(resultNames(), ", "))
		}

		if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
			return fmt.Errorf("database %s not found; run 'ordermart run' first", cfg.DBPath)
		}

		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		ds, err := db.ReadRelation(relation)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader(ds.Columns)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, row := range ds.Rows {
			table.Append(row)
		}
		table.Render()

		fmt.Printf("%d rows\n", len(ds.Rows))
		return nil
	},
}

func resultNames() []string {
	rels := storage.OutputRelations()
	names := make([]string, len(rels))
	for i, rel := range rels {
		names[i] = rel.Name
	}
	return names
}
