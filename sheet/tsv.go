package sheet

import (
	"encoding/csv"
	"io"

	api "github.com/uhppoted/uhppoted-lib/acl"
)

// ToTSV writes a table to f as tab-separated values, header row first.
func ToTSV(f io.Writer, table *api.Table) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(table.Header); err != nil {
		return err
	}

	for _, record := range table.Records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
