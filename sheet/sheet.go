package sheet

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	api "github.com/uhppoted/uhppoted-lib/acl"
)

// MakeTable materialises a worksheet ValueRange as a Table. The first row is
// taken as the header and the remaining rows as records, in worksheet order,
// with short rows padded out to the header width. An empty worksheet yields a
// table with no records - an empty sheet is a state, not an error.
func MakeTable(data *sheets.ValueRange) *api.Table {
	if data == nil || len(data.Values) == 0 {
		return &api.Table{
			Header:  []string{},
			Records: [][]string{},
		}
	}

	row := data.Values[0]
	header := make([]string, len(row))
	for i, v := range row {
		header[i] = clean(stringify(v))
	}

	records := [][]string{}
	for _, row := range data.Values[1:] {
		record := make([]string, len(header))
		for i := range header {
			if i < len(row) {
				record[i] = clean(stringify(row[i]))
			}
		}

		records = append(records, record)
	}

	return &api.Table{
		Header:  header,
		Records: records,
	}
}

// Index maps normalised column names to their position in the header row.
// The first occurrence of a name wins.
func Index(table *api.Table) map[string]int {
	index := map[string]int{}

	for i, v := range table.Header {
		k := normalise(v)
		if _, ok := index[k]; !ok {
			index[k] = i
		}
	}

	return index
}

// Range formats a worksheet name as an A1 notation range covering the whole
// sheet, quoting names that contain spaces or other special characters.
func Range(worksheet string) string {
	if strings.ContainsAny(worksheet, " !:'") {
		return fmt.Sprintf("'%s'", strings.ReplaceAll(worksheet, "'", "''"))
	}

	return worksheet
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
