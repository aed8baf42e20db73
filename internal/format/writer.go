// Package format serializes entity tables to the supported on-disk formats.
// Every writer preserves column names and order from the table schema and
// accepts zero-row tables, producing a valid artifact with no data rows.
package format

import (
	"io"
	"sort"
	"time"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/dataset"
)

type Writer interface {
	// Ext is the conventional file extension, without the dot.
	Ext() string
	Write(w io.Writer, t dataset.Table) error
}

var registry = map[string]Writer{
	"csv":     CSV{},
	"json":    JSONL{},
	"parquet": Parquet{},
	"avro":    Avro{},
}

// Lookup resolves a format name to its writer.
func Lookup(name string) (Writer, bool) {
	w, ok := registry[name]
	return w, ok
}

// Names lists the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Timestamps render as ISO-8601 with offset in every textual format.
func isoTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
