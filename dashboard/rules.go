package dashboard

import (
	"fmt"
	"io"
	"net/http"

	api "github.com/uhppoted/uhppoted-lib/acl"

	"github.com/predicto/predicto-ads-dashboard/sheet"
)

type rulesPage struct {
	Title     string
	Worksheet string
	Notice    string
	Warning   string
	Error     string
	Table     *api.Table
}

// rules renders the 'Rules' worksheet as a read-only table. The whole fetch
// sequence sits behind a single error boundary: credential, spreadsheet and
// read failures all surface as the same generic notice.
func (s *Server) rules(w http.ResponseWriter, rq *http.Request) {
	page := rulesPage{
		Title:     TITLE,
		Worksheet: RulesSheet,
	}

	table, err := s.source.Fetch(rq.Context(), RulesSheet)

	switch {
	case err != nil:
		page.Error = fmt.Sprintf("Failed to load the '%s' sheet: %v", RulesSheet, err)

	case len(table.Records) == 0:
		page.Warning = fmt.Sprintf("The '%s' sheet is empty.", RulesSheet)

	default:
		page.Notice = fmt.Sprintf("Loaded %d rows from the '%s' sheet.", len(table.Records), RulesSheet)
		page.Table = table
	}

	s.render(w, "rules.html", page)
}

// export downloads the 'Rules' worksheet as a TSV or Excel file.
func (s *Server) export(w http.ResponseWriter, rq *http.Request) {
	var write func(io.Writer, *api.Table) error
	var filename string
	var contentType string

	switch format := rq.FormValue("format"); format {
	case "", "tsv":
		write = sheet.ToTSV
		filename = "rules.tsv"
		contentType = "text/tab-separated-values"

	case "xlsx":
		write = func(f io.Writer, table *api.Table) error {
			return sheet.ToXLSX(f, RulesSheet, table)
		}
		filename = "rules.xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	default:
		http.Error(w, fmt.Sprintf("unsupported format '%s'", format), http.StatusBadRequest)
		return
	}

	table, err := s.source.Fetch(rq.Context(), RulesSheet)
	if err != nil {
		http.Error(w, fmt.Sprintf("unable to retrieve data from sheet (%v)", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := write(w, table); err != nil {
		warn(fmt.Sprintf("error writing %s (%v)", filename, err))
	}
}
