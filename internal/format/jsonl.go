package format

import (
	"bufio"
	"encoding/json"
	"io"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// JSONL writes one JSON object per line. Lines are assembled by hand so the
// field order matches the schema, which map marshaling would not preserve.
type JSONL struct{}

func (JSONL) Ext() string { return "jsonl" }

func (JSONL) Write(w io.Writer, t dataset.Table) error {
	bw := bufio.NewWriter(w)
	var line []byte
	for _, row := range t.Rows {
		line = line[:0]
		line = append(line, '{')
		for i, col := range t.Columns {
			if i > 0 {
				line = append(line, ',')
			}
			name, err := json.Marshal(col.Name)
			if err != nil {
				return err
			}
			value, err := json.Marshal(jsonValue(col.Kind, row[i]))
			if err != nil {
				return err
			}
			line = append(line, name...)
			line = append(line, ':')
			line = append(line, value...)
		}
		line = append(line, '}', '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func jsonValue(kind dataset.Kind, v any) any {
	if v == nil {
		return nil
	}
	if kind == dataset.KindTime {
		return isoTime(v.(time.Time))
	}
	return v
}
