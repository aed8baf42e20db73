package format

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hamba/avro/v2/ocf"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

// Avro writes a self-describing object container file. Each column maps to a
// nullable union: int columns to ["null","long"], float to ["null","double"],
// bool to ["null","boolean"], everything else (timestamps included) to
// ["null","string"]. Timestamps are rendered ISO-8601 before encoding and a
// nil value encodes as the avro null branch. The derivation is total: any
// kind outside the three typed branches falls through to string.
type Avro struct{}

func (Avro) Ext() string { return "avro" }

type avroField struct {
	Name    string   `json:"name"`
	Type    []string `json:"type"`
	Default any      `json:"default"`
}

type avroRecord struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	Fields []avroField `json:"fields"`
}

func (Avro) Write(w io.Writer, t dataset.Table) error {
	schema, err := avroSchema(t)
	if err != nil {
		return err
	}
	enc, err := ocf.NewEncoder(schema, w)
	if err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			record[col.Name] = avroValue(col.Kind, row[i])
		}
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return enc.Close()
}

func avroSchema(t dataset.Table) (string, error) {
	rec := avroRecord{Name: t.Name, Type: "record"}
	for _, col := range t.Columns {
		rec.Fields = append(rec.Fields, avroField{
			Name: col.Name,
			Type: []string{"null", avroBranch(col.Kind)},
		})
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func avroBranch(kind dataset.Kind) string {
	switch kind {
	case dataset.KindInt:
		return "long"
	case dataset.KindFloat:
		return "double"
	case dataset.KindBool:
		return "boolean"
	default:
		return "string"
	}
}

// Union values are the single-entry map representation hamba/avro expects
// for generic encoding; nil selects the null branch.
func avroValue(kind dataset.Kind, v any) any {
	if v == nil {
		return nil
	}
	switch kind {
	case dataset.KindInt:
		return map[string]any{"long": v.(int64)}
	case dataset.KindFloat:
		return map[string]any{"double": v.(float64)}
	case dataset.KindBool:
		return map[string]any{"boolean": v.(bool)}
	case dataset.KindTime:
		return map[string]any{"string": isoTime(v.(time.Time))}
	default:
		return map[string]any{"string": v.(string)}
	}
}
