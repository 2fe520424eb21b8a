package sheet

import (
	"io"

	"github.com/xuri/excelize/v2"

	api "github.com/uhppoted/uhppoted-lib/acl"
)

// ToXLSX writes a table to f as an Excel workbook with a single worksheet,
// header row first.
func ToXLSX(f io.Writer, worksheet string, table *api.Table) error {
	x := excelize.NewFile()

	defer x.Close()

	name := "Sheet1"
	if worksheet != "" && worksheet != name {
		if err := x.SetSheetName(name, worksheet); err != nil {
			return err
		}

		name = worksheet
	}

	rows := append([][]string{table.Header}, table.Records...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		record := make([]any, len(row))
		for j, v := range row {
			record[j] = v
		}

		if err := x.SetSheetRow(name, cell, &record); err != nil {
			return err
		}
	}

	return x.Write(f)
}
