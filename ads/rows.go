package ads

import (
	"strings"

	api "github.com/uhppoted/uhppoted-lib/acl"

	"github.com/predicto/predicto-ads-dashboard/sheet"
)

// Row is one line of the ROAS worksheet, enriched from the ad naming
// convention and (after MergeControls) from the Manual Control worksheet.
type Row struct {
	Date         string
	AdName       string
	ChannelID    string
	Account      string
	Domain       string
	BuyingMethod string
	Category     string

	Spend   float64
	Revenue float64
	Profit  float64
	ROAS    float64

	// ROAS as recorded in the worksheet (e.g. "120%"), used for the
	// day-before joins.
	SheetROAS string

	// Day-before and two-days-before ROAS, present in single day views only
	// and only when the preceding day has a row for the channel.
	HasDBF  bool
	HasDBF2 bool
	DBF     float64
	DBF2    float64

	AdSetID       string
	CurrentBudget float64
	CurrentStatus string
}

// FromTable materialises the ROAS worksheet as rows. Missing columns read as
// blank, numeric columns are coerced with unparseable values as 0, and the
// account/domain/buying method/category fields are derived from the ad name.
// A blank channel ID falls back to the one embedded in the ad name.
func FromTable(table *api.Table) []Row {
	index := sheet.Index(table)

	at := func(record []string, column string) string {
		if ix, ok := index[column]; ok && ix < len(record) {
			return record[ix]
		}

		return ""
	}

	rows := make([]Row, 0, len(table.Records))
	for _, record := range table.Records {
		row := Row{
			Date:      at(record, "date"),
			AdName:    at(record, "adname"),
			ChannelID: strings.TrimSpace(at(record, "customchannelid")),
			SheetROAS: at(record, "roas"),
			Spend:     Number(at(record, "spend(usd)")),
			Revenue:   Number(at(record, "revenue(usd)")),
			Profit:    Number(at(record, "profit(usd)")),
		}

		row.Account = ParseAccount(row.AdName)
		row.Domain = ParseDomain(row.AdName)
		row.BuyingMethod = ParseBuyingMethod(row.AdName)
		row.Category = ParseCategory(row.AdName)

		if row.ChannelID == "" {
			row.ChannelID = ParseChannelID(row.AdName)
		}

		rows = append(rows, row)
	}

	return rows
}

// Control is one line of the Manual Control worksheet.
type Control struct {
	AdSetID string
	Budget  float64
	Status  string
}

// Controls materialises the Manual Control worksheet as a lookup keyed by ad
// name. Ad set IDs are stored in the sheet with a leading apostrophe to keep
// them as text - the apostrophe is stripped here.
func Controls(table *api.Table) map[string]Control {
	index := sheet.Index(table)

	at := func(record []string, column string) string {
		if ix, ok := index[column]; ok && ix < len(record) {
			return record[ix]
		}

		return ""
	}

	controls := map[string]Control{}
	for _, record := range table.Records {
		adName := at(record, "adname")
		if adName == "" {
			continue
		}

		controls[adName] = Control{
			AdSetID: strings.ReplaceAll(strings.TrimSpace(at(record, "adsetid")), "'", ""),
			Budget:  Number(at(record, "currentbudget(ils)")),
			Status:  at(record, "currentstatus"),
		}
	}

	return controls
}

// MergeControls attaches the Manual Control fields to rows, joined by ad
// name. Rows without a control entry are left untouched.
func MergeControls(rows []Row, controls map[string]Control) {
	for i := range rows {
		if control, ok := controls[rows[i].AdName]; ok {
			rows[i].AdSetID = control.AdSetID
			rows[i].CurrentBudget = control.Budget
			rows[i].CurrentStatus = control.Status
		}
	}
}
