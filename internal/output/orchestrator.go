// Package output drives one generation pass and fans the resulting tables
// out to the requested formats under <output dir>/<format>/<entity>.<ext>.
package output

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/format"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/generate"
)

type Params struct {
	Customers        int
	Products         int
	Orders           int
	MaxItemsPerOrder int
	CustomerSeed     int64
	ProductSeed      int64
	OrderSeed        int64
	Formats          []string
	OutputDir        string
}

type Result struct {
	Dataset      dataset.Dataset
	FilesWritten int
	RowsWritten  int
}

type Orchestrator struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Orchestrator {
	return &Orchestrator{log: log}
}

// Run generates the four entity sets exactly once and writes them to every
// recognized requested format. A parameter failure aborts before anything
// touches the filesystem. A write failure drops that one artifact, is
// recorded with entity and format context, and does not roll back artifacts
// already written; all write failures are joined into the returned error.
func (o *Orchestrator) Run(p Params) (Result, error) {
	log := o.log.With("run_id", uuid.NewString())
	now := time.Now().UTC()

	customers, err := generate.CustomersAt(p.Customers, p.CustomerSeed, now)
	if err != nil {
		return Result{}, err
	}
	products, err := generate.ProductsAt(p.Products, p.ProductSeed, now)
	if err != nil {
		return Result{}, err
	}
	orders, items, err := generate.OrdersAt(p.Orders, p.MaxItemsPerOrder, len(customers), len(products), p.OrderSeed, now)
	if err != nil {
		return Result{}, err
	}

	res := Result{Dataset: dataset.Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
	}}
	log.Info("dataset generated",
		"customers", len(customers), "products", len(products),
		"orders", len(orders), "order_items", len(items))

	tables := res.Dataset.Tables()
	var errs []error
	for _, name := range dedupe(p.Formats) {
		w, ok := format.Lookup(name)
		if !ok {
			log.Warn("skipping unknown format", "format", name)
			continue
		}
		dir := filepath.Join(p.OutputDir, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("create %s dir: %w", name, err))
			continue
		}
		for _, t := range tables {
			path := filepath.Join(dir, t.Name+"."+w.Ext())
			if err := writeFile(path, w, t); err != nil {
				errs = append(errs, fmt.Errorf("write %s/%s: %w", name, t.Name, err))
				continue
			}
			res.FilesWritten++
			res.RowsWritten += len(t.Rows)
			log.Info("wrote artifact", "format", name, "entity", t.Name, "rows", len(t.Rows), "path", path)
		}
	}
	return res, errors.Join(errs...)
}

// writeFile materializes one artifact. On failure the partial file is
// removed, so a path on disk always means a completed write.
func writeFile(path string, w format.Writer, t dataset.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Write(f, t); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// dedupe normalizes format names and keeps first occurrence order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
