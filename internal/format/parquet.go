package format

import (
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// Parquet writes the table with native column typing: int64, double,
// boolean, timestamp(millis), byte-array strings. The parquet schema is
// built from the table's column descriptors, not inferred from values.
type Parquet struct{}

func (Parquet) Ext() string { return "parquet" }

func (Parquet) Write(w io.Writer, t dataset.Table) error {
	group := parquet.Group{}
	for _, col := range t.Columns {
		group[col.Name] = parquetNode(col.Kind)
	}
	pw := parquet.NewGenericWriter[map[string]any](w, parquet.NewSchema(t.Name, group))

	records := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			record[col.Name] = parquetValue(col.Kind, row[i])
		}
		records = append(records, record)
	}
	if len(records) > 0 {
		if _, err := pw.Write(records); err != nil {
			return err
		}
	}
	return pw.Close()
}

func parquetNode(kind dataset.Kind) parquet.Node {
	switch kind {
	case dataset.KindInt:
		return parquet.Optional(parquet.Int(64))
	case dataset.KindFloat:
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	case dataset.KindBool:
		return parquet.Optional(parquet.Leaf(parquet.BooleanType))
	case dataset.KindTime:
		return parquet.Optional(parquet.Timestamp(parquet.Millisecond))
	default:
		return parquet.Optional(parquet.String())
	}
}

func parquetValue(kind dataset.Kind, v any) any {
	if v == nil {
		return nil
	}
	// timestamp(millis) columns are physically int64
	if kind == dataset.KindTime {
		return v.(time.Time).UnixMilli()
	}
	return v
}
