package format

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// CSV writes a header row followed by one row per record, in generation
// order. Float columns carry monetary values and render with 2 decimals.
type CSV struct{}

func (CSV) Ext() string { return "csv" }

func (CSV) Write(w io.Writer, t dataset.Table) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = csvValue(col.Kind, row[i])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvValue(kind dataset.Kind, v any) string {
	if v == nil {
		return ""
	}
	switch kind {
	case dataset.KindInt:
		return strconv.FormatInt(v.(int64), 10)
	case dataset.KindFloat:
		return strconv.FormatFloat(v.(float64), 'f', 2, 64)
	case dataset.KindBool:
		return strconv.FormatBool(v.(bool))
	case dataset.KindTime:
		return isoTime(v.(time.Time))
	default:
		return v.(string)
	}
}
