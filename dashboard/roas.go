package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/predicto/predicto-ads-dashboard/ads"
)

const ymd = "2006-01-02"

type dashboardPage struct {
	Title   string
	Mode    string
	Date    string
	Preset  string
	Start   string
	End     string
	ShowDBF bool

	Summary    ads.Summary
	Accounts   []string
	Categories []string
	Domains    []string
	Filters    ads.Filters
	Rows       []ads.Row
	Totals     ads.Summary

	AdSetsEnabled bool
	Warning       string
	Error         string
}

// dashboard renders the ROAS control panel - a single day view with
// day-before ROAS, or an aggregated date range view.
func (s *Server) dashboard(w http.ResponseWriter, rq *http.Request) {
	if rq.URL.Path != "/" {
		http.NotFound(w, rq)
		return
	}

	page := dashboardPage{
		Title:         TITLE,
		Mode:          rq.FormValue("mode"),
		AdSetsEnabled: s.adsets != nil,
	}

	if page.Mode != "range" {
		page.Mode = "day"
	}

	table, err := s.source.Fetch(rq.Context(), ROASSheet)
	if err != nil {
		page.Error = fmt.Sprintf("Failed to load the '%s' sheet: %v", ROASSheet, err)
		s.render(w, "dashboard.html", page)
		return
	}

	rows := ads.FromTable(table)
	if len(rows) == 0 {
		page.Warning = "ROAS sheet is empty or not accessible."
		s.render(w, "dashboard.html", page)
		return
	}

	// a missing 'Manual Control' tab degrades to an empty control set
	controls := map[string]ads.Control{}
	if manual, err := s.source.Fetch(rq.Context(), ManualControlSheet); err == nil {
		controls = ads.Controls(manual)
	} else {
		warn(fmt.Sprintf("unable to retrieve '%s' sheet (%v)", ManualControlSheet, err))
	}

	today := s.now()

	var view []ads.Row

	if page.Mode == "day" {
		date := today
		if v, err := time.ParseInLocation(ymd, rq.FormValue("date"), time.Local); err == nil {
			date = v
		}

		page.Date = date.Format(ymd)
		page.ShowDBF = true

		if view = ads.DayView(rows, date); len(view) == 0 {
			page.Warning = "No data available for the selected date."
			s.render(w, "dashboard.html", page)
			return
		}
	} else {
		preset := rq.FormValue("preset")
		if preset == "" {
			preset = "last-7-days"
		}

		start := today.AddDate(0, 0, -6)
		end := today

		if preset == "custom" {
			if v, err := time.ParseInLocation(ymd, rq.FormValue("start"), time.Local); err == nil {
				start = v
			}

			if v, err := time.ParseInLocation(ymd, rq.FormValue("end"), time.Local); err == nil {
				end = v
			}
		} else if from, to, err := ads.PresetRange(preset, today); err == nil {
			start = from
			end = to
		}

		page.Preset = preset
		page.Start = start.Format(ymd)
		page.End = end.Format(ymd)

		if view = ads.RangeView(rows, start, end); len(view) == 0 {
			page.Warning = "No data available for the selected range."
			s.render(w, "dashboard.html", page)
			return
		}
	}

	ads.MergeControls(view, controls)

	// summary metrics cover the full view, the totals row the filtered table
	page.Summary = ads.Summarize(view)
	page.Accounts = ads.Accounts(view)
	page.Categories = ads.Categories(view)
	page.Domains = ads.Domains(view)

	page.Filters = ads.Filters{
		Account:  rq.FormValue("account"),
		Status:   rq.FormValue("status"),
		Category: rq.FormValue("category"),
		Domain:   rq.FormValue("domain"),
	}

	page.Rows = page.Filters.Apply(view)
	page.Totals = ads.Summarize(page.Rows)

	if s.debug {
		debug(fmt.Sprintf("dashboard - mode:%s  rows:%d  filtered:%d", page.Mode, len(view), len(page.Rows)))
	}

	s.render(w, "dashboard.html", page)
}
