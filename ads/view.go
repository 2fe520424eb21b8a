package ads

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const ymd = "2006-01-02"

// DayView returns the rows for a single day, with the day-before and
// two-days-before ROAS attached from the preceding days' rows, joined by
// channel ID.
func DayView(rows []Row, date time.Time) []Row {
	day := date.Format(ymd)
	prev := date.AddDate(0, 0, -1).Format(ymd)
	prev2 := date.AddDate(0, 0, -2).Format(ymd)

	dbf := map[string]string{}
	dbf2 := map[string]string{}
	for _, row := range rows {
		switch row.Date {
		case prev:
			dbf[row.ChannelID] = row.SheetROAS

		case prev2:
			dbf2[row.ChannelID] = row.SheetROAS
		}
	}

	view := []Row{}
	for _, row := range rows {
		if row.Date != day {
			continue
		}

		// a channel with no row for the preceding day has no day-before
		// ROAS - the cell renders blank, not as 0%
		if v, ok := dbf[row.ChannelID]; ok {
			row.HasDBF = true
			row.DBF = CleanROAS(v)
		}

		if v, ok := dbf2[row.ChannelID]; ok {
			row.HasDBF2 = true
			row.DBF2 = CleanROAS(v)
		}

		recompute(&row)

		view = append(view, row)
	}

	return view
}

// RangeView aggregates the rows for a date range (inclusive), summing spend,
// revenue and profit per ad. Day-before ROAS is not meaningful over a range.
func RangeView(rows []Row, start, end time.Time) []Row {
	from := start.Format(ymd)
	to := end.Format(ymd)

	type group struct {
		adName       string
		channelID    string
		account      string
		domain       string
		buyingMethod string
		category     string
	}

	totals := map[group]*Row{}
	order := []group{}

	for _, row := range rows {
		if row.Date < from || row.Date > to {
			continue
		}

		g := group{
			adName:       row.AdName,
			channelID:    row.ChannelID,
			account:      row.Account,
			domain:       row.Domain,
			buyingMethod: row.BuyingMethod,
			category:     row.Category,
		}

		if total, ok := totals[g]; ok {
			total.Spend += row.Spend
			total.Revenue += row.Revenue
		} else {
			row.Date = ""
			row.SheetROAS = ""
			row.HasDBF = false
			row.HasDBF2 = false

			totals[g] = &row
			order = append(order, g)
		}
	}

	view := make([]Row, 0, len(order))
	for _, g := range order {
		row := *totals[g]

		recompute(&row)

		view = append(view, row)
	}

	return view
}

// recompute derives profit and ROAS from the (possibly summed) spend and
// revenue, with ROAS 0 when there is no spend.
func recompute(row *Row) {
	row.Profit = row.Revenue - row.Spend

	if row.Spend != 0 {
		row.ROAS = row.Revenue / row.Spend
	} else {
		row.ROAS = 0
	}
}

// PresetRange resolves a quick range preset relative to today.
func PresetRange(preset string, today time.Time) (time.Time, time.Time, error) {
	year, month, _ := today.Date()

	switch preset {
	case "last-7-days":
		return today.AddDate(0, 0, -6), today, nil

	case "last-14-days":
		return today.AddDate(0, 0, -13), today, nil

	case "last-30-days":
		return today.AddDate(0, 0, -29), today, nil

	case "this-month":
		return time.Date(year, month, 1, 0, 0, 0, 0, today.Location()), today, nil

	case "last-month":
		first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
		last := first.AddDate(0, 0, -1)
		return time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, today.Location()), last, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("unknown preset '%s'", preset)
}

// Filters narrows a view by account, ad set status, category and domain.
// Blank fields match everything.
type Filters struct {
	Account  string
	Status   string
	Category string
	Domain   string
}

// Apply returns the rows matching the filters.
func (f Filters) Apply(rows []Row) []Row {
	out := []Row{}

	for _, row := range rows {
		if f.Account != "" && row.Account != f.Account {
			continue
		}

		if f.Status != "" && statusOf(row) != strings.ToUpper(strings.TrimSpace(f.Status)) {
			continue
		}

		if f.Category != "" && row.Category != f.Category {
			continue
		}

		if f.Domain != "" && row.Domain != f.Domain {
			continue
		}

		out = append(out, row)
	}

	return out
}

// statusOf normalises the ad set status for filtering, treating the
// spreadsheet's textual empties as blank.
func statusOf(row Row) string {
	status := strings.ToUpper(strings.TrimSpace(row.CurrentStatus))
	if status == "NONE" || status == "NAN" {
		return ""
	}

	return status
}

// Accounts returns the sorted set of non-blank account identifiers in a view.
func Accounts(rows []Row) []string {
	return collect(rows, func(row Row) string { return row.Account })
}

// Categories returns the sorted set of non-blank categories in a view.
func Categories(rows []Row) []string {
	return collect(rows, func(row Row) string { return row.Category })
}

// Domains returns the sorted set of non-blank domains in a view.
func Domains(rows []Row) []string {
	return collect(rows, func(row Row) string { return row.Domain })
}

func collect(rows []Row, field func(Row) string) []string {
	set := map[string]bool{}
	for _, row := range rows {
		if v := field(row); v != "" {
			set[v] = true
		}
	}

	list := make([]string, 0, len(set))
	for v := range set {
		list = append(list, v)
	}

	sort.Strings(list)

	return list
}

// Summary is the dashboard's top-line metrics for a view.
type Summary struct {
	Spend   float64
	Revenue float64
	Profit  float64
	ROAS    float64
}

// Summarize totals a view. The total ROAS is total revenue over total spend,
// 0 when there is no spend.
func Summarize(rows []Row) Summary {
	summary := Summary{}

	for _, row := range rows {
		summary.Spend += row.Spend
		summary.Revenue += row.Revenue
		summary.Profit += row.Profit
	}

	if summary.Spend != 0 {
		summary.ROAS = summary.Revenue / summary.Spend
	}

	return summary
}
