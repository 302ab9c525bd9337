// ABOUTME: Generates realistic sample input CSVs so a fresh checkout can run.
// ABOUTME: Deterministic under a fixed seed via gofakeit.
package seed

import (
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"ordermart/internal/config"
	"ordermart/internal/dataset"
	"ordermart/internal/logging"
	"ordermart/internal/storage"
)

// Options controls sample data volume and reproducibility.
type Options struct {
	Customers int
	Orders    int
	// Seed fixes the random source; 0 picks a random seed.
	Seed uint64
}

// DefaultOptions returns sensible sample volumes.
func DefaultOptions() Options {
	return Options{Customers: 25, Orders: 100}
}

// Order statuses weighted so most sample orders survive the delivered-only
// transform filter.
var statuses = []string{
	"delivered", "delivered", "delivered", "delivered",
	"shipped", "pending", "cancelled",
}

// Generate writes the three staging input CSVs into cfg.InputDir, overwriting
// any existing files. Column headers follow the staging schema descriptors.
func Generate(cfg *config.Config, opts Options) error {
	if opts.Customers < 1 {
		return fmt.Errorf("customers must be at least 1")
	}
	if opts.Orders < 1 {
		return fmt.Errorf("orders must be at least 1")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := gofakeit.New(seed)

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	// Generation order is fixed so a given seed always yields the same files.
	datasets := make(map[string]*dataset.Dataset, 3)
	datasets[storage.DatasetCustomers] = customers(f, opts.Customers)
	datasets[storage.DatasetOrders] = orders(f, opts)
	datasets[storage.DatasetOrderItems] = orderItems(f, opts.Orders)

	for _, s := range storage.StagingSchemas() {
		ds := datasets[s.Name]
		path := cfg.InputPath(s.Name)
		if err := dataset.WriteCSV(ds, path); err != nil {
			return err
		}
		logging.Info().
			Str("file", path).
			Int("rows", len(ds.Rows)).
			Msg("Sample input written")
	}
	return nil
}

func customers(f *gofakeit.Faker, n int) *dataset.Dataset {
	ds := &dataset.Dataset{Columns: storage.Customers.ColumnNames()}
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		ds.Rows = append(ds.Rows, []string{
			strconv.Itoa(i),
			f.FirstName(),
			f.LastName(),
			f.DateRange(start, end).Format("2006-01-02"),
		})
	}
	return ds
}

func orders(f *gofakeit.Faker, opts Options) *dataset.Dataset {
	ds := &dataset.Dataset{Columns: storage.Orders.ColumnNames()}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= opts.Orders; i++ {
		ds.Rows = append(ds.Rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(f.IntRange(1, opts.Customers)),
			f.DateRange(start, end).Format("2006-01-02"),
			statuses[f.IntRange(0, len(statuses)-1)],
		})
	}
	return ds
}

func orderItems(f *gofakeit.Faker, orders int) *dataset.Dataset {
	ds := &dataset.Dataset{Columns: storage.OrderItems.ColumnNames()}
	itemID := 1
	for orderID := 1; orderID <= orders; orderID++ {
		for n := f.IntRange(1, 4); n > 0; n-- {
			ds.Rows = append(ds.Rows, []string{
				strconv.Itoa(itemID),
				strconv.Itoa(orderID),
				strconv.Itoa(f.IntRange(1, 100)),
				strconv.Itoa(f.IntRange(1, 5)),
				strconv.FormatFloat(f.Price(1, 200), 'f', 2, 64),
			})
			itemID++
		}
	}
	return ds
}
