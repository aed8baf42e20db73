package output

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/generate"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testParams(dir string, formats ...string) Params {
	return Params{
		Customers:        10,
		Products:         8,
		Orders:           12,
		MaxItemsPerOrder: 3,
		CustomerSeed:     generate.DefaultCustomerSeed,
		ProductSeed:      generate.DefaultProductSeed,
		OrderSeed:        generate.DefaultOrderSeed,
		Formats:          formats,
		OutputDir:        dir,
	}
}

func TestRunWritesRequestedFormatsOnly(t *testing.T) {
	dir := t.TempDir()
	res, err := New(testLogger()).Run(testParams(dir, "csv", "json"))
	require.NoError(t, err)

	var files []string
	require.NoError(t, filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, path)
			files = append(files, rel)
		}
		return nil
	}))
	assert.ElementsMatch(t, []string{
		filepath.Join("csv", "customers.csv"),
		filepath.Join("csv", "products.csv"),
		filepath.Join("csv", "orders.csv"),
		filepath.Join("csv", "order_items.csv"),
		filepath.Join("json", "customers.jsonl"),
		filepath.Join("json", "products.jsonl"),
		filepath.Join("json", "orders.jsonl"),
		filepath.Join("json", "order_items.jsonl"),
	}, files)
	assert.Equal(t, 8, res.FilesWritten)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "no other format subdirectories")
}

func TestRunUnknownFormatIgnored(t *testing.T) {
	dir := t.TempDir()
	res, err := New(testLogger()).Run(testParams(dir, "csv", "xml", "  CSV "))
	require.NoError(t, err)
	require.Equal(t, 4, res.FilesWritten, "duplicate and unknown names collapse")

	_, statErr := os.Stat(filepath.Join(dir, "xml"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRunRowAccounting(t *testing.T) {
	dir := t.TempDir()
	res, err := New(testLogger()).Run(testParams(dir, "csv"))
	require.NoError(t, err)
	require.Equal(t, res.Dataset.Rows(), res.RowsWritten)
	require.Equal(t, 10, len(res.Dataset.Customers))
	require.Equal(t, 8, len(res.Dataset.Products))
	require.Equal(t, 12, len(res.Dataset.Orders))
}

func TestRunInvalidParamsNoOutput(t *testing.T) {
	dir := t.TempDir()
	p := testParams(dir, "csv")
	p.MaxItemsPerOrder = 0
	_, err := New(testLogger()).Run(p)
	require.ErrorIs(t, err, generate.ErrInvalidParameter)

	entries, err2 := os.ReadDir(dir)
	require.NoError(t, err2)
	require.Empty(t, entries, "nothing written on parameter failure")
}

func TestRunEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	p := testParams(dir, "csv", "json", "parquet", "avro")
	p.Customers, p.Products, p.Orders = 0, 0, 0
	res, err := New(testLogger()).Run(p)
	require.NoError(t, err)
	require.Equal(t, 16, res.FilesWritten, "empty artifacts are still valid files")
	require.Zero(t, res.RowsWritten)
}
