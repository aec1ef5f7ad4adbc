package cli

import (
	"encoding/json"
	"io"
	"text/tabwriter"
)

// render writes data as indented JSON, or as text rows via rows.
func render(w io.Writer, format string, data any, rows func(tw *tabwriter.Writer)) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows(tw)
	return tw.Flush()
}
