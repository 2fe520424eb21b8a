package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	api "github.com/uhppoted/uhppoted-lib/acl"

	"github.com/predicto/predicto-ads-dashboard/facebook"
)

type recorder struct {
	updates []facebook.Update
}

func (r *recorder) ApplyAll(ctx context.Context, updates []facebook.Update) facebook.Result {
	r.updates = updates

	return facebook.Result{Applied: len(updates)}
}

func fixtures() map[string]*api.Table {
	return map[string]*api.Table{
		ROASSheet: {
			Header: []string{"Date", "Ad Name", "Custom Channel ID", "ROAS", "Spend (USD)", "Revenue (USD)", "Profit (USD)"},
			Records: [][]string{
				{"2023-05-03", "3-ch83080_example.com_bm_news", "ch83080", "150%", "100", "150", "50"},
				{"2023-05-02", "3-ch83080_example.com_bm_news", "ch83080", "120%", "100", "120", "20"},
				{"2023-05-01", "3-ch83080_example.com_bm_news", "ch83080", "90%", "100", "90", "-10"},
				{"2023-05-03", "1-ch91210_example.org_tb_sport", "ch91210", "80%", "50", "40", "-10"},
			},
		},
		ManualControlSheet: {
			Header: []string{"Ad Name", "Ad Set ID", "Current Budget (ILS)", "Current Status"},
			Records: [][]string{
				{"3-ch83080_example.com_bm_news", "'23851234567890123", "150", "ACTIVE"},
				{"1-ch91210_example.org_tb_sport", "23859876543210987", "90.5", "PAUSED"},
			},
		},
	}
}

func server(t *testing.T, adsets AdSets) *Server {
	srv, err := NewServer(&stub{tables: fixtures()}, adsets, false)
	if err != nil {
		t.Fatalf("Unexpected error creating server (%v)", err)
	}

	srv.now = func() time.Time {
		return time.Date(2023, time.May, 3, 12, 0, 0, 0, time.Local)
	}

	return srv
}

func TestDashboardDayView(t *testing.T) {
	srv := server(t, &recorder{})

	code, body := get(t, srv, "/?mode=day&date=2023-05-03")

	if code != http.StatusOK {
		t.Fatalf("Incorrect status code - expected:%v, got:%v", http.StatusOK, code)
	}

	for _, v := range []string{
		"Total Spend",
		"$150.00",
		"3-ch83080_example.com_bm_news",
		"1-ch91210_example.org_tb_sport",
		"<th>DBF</th>",
		"<th>2DBF</th>",
		"120%",
	} {
		if !strings.Contains(body, v) {
			t.Errorf("Expected page to contain %v", v)
		}
	}
}

func TestDashboardRangeView(t *testing.T) {
	srv := server(t, &recorder{})

	code, body := get(t, srv, "/?mode=range&preset=custom&start=2023-05-01&end=2023-05-03")

	if code != http.StatusOK {
		t.Fatalf("Incorrect status code - expected:%v, got:%v", http.StatusOK, code)
	}

	if strings.Contains(body, "<th>DBF</th>") {
		t.Errorf("Expected no DBF columns in range view")
	}

	// 3 days of ch83080: 300 spend, 360 revenue
	for _, v := range []string{"$300.00", "$360.00"} {
		if !strings.Contains(body, v) {
			t.Errorf("Expected page to contain aggregate %v", v)
		}
	}
}

func TestDashboardDayViewWithMissingHistory(t *testing.T) {
	srv := server(t, &recorder{})

	_, body := get(t, srv, "/?mode=day&date=2023-05-03")

	// ch91210 has no rows for the preceding days - its DBF cells are blank,
	// not banded 0%
	if !strings.Contains(body, `<td class="roas"></td>`) {
		t.Errorf("Expected blank DBF cells for channels without history")
	}

	if strings.Contains(body, "#B31B1B") {
		t.Errorf("Expected no banded 0%% DBF cells for channels without history")
	}
}

func TestDashboardStatusBadges(t *testing.T) {
	srv := server(t, &recorder{})

	_, body := get(t, srv, "/?mode=day&date=2023-05-03")

	if !strings.Contains(body, "#D4EDDA") {
		t.Errorf("Expected an active status badge")
	}

	if !strings.Contains(body, "#5c5b5b") {
		t.Errorf("Expected a paused status badge")
	}
}

func TestDashboardWithAccountFilter(t *testing.T) {
	srv := server(t, &recorder{})

	_, body := get(t, srv, "/?mode=day&date=2023-05-03&account=1")

	if strings.Contains(body, "<td>3-ch83080_example.com_bm_news</td>") {
		t.Errorf("Expected account filter to drop account 3 rows")
	}

	if !strings.Contains(body, "<td>1-ch91210_example.org_tb_sport</td>") {
		t.Errorf("Expected account filter to keep account 1 rows")
	}
}

func TestDashboardWithNoDataForDate(t *testing.T) {
	srv := server(t, &recorder{})

	_, body := get(t, srv, "/?mode=day&date=2023-07-01")

	if !strings.Contains(body, "No data available for the selected date.") {
		t.Errorf("Expected no-data warning, got:\n%v", body)
	}
}

func TestDashboardWithEmptyROASSheet(t *testing.T) {
	empty := map[string]*api.Table{
		ROASSheet: {
			Header:  []string{"Date", "Ad Name"},
			Records: [][]string{},
		},
	}

	srv, _ := NewServer(&stub{tables: empty}, nil, false)

	_, body := get(t, srv, "/")

	if !strings.Contains(body, "ROAS sheet is empty or not accessible.") {
		t.Errorf("Expected empty sheet warning, got:\n%v", body)
	}
}

func TestDashboardWithMissingManualControl(t *testing.T) {
	tables := fixtures()
	delete(tables, ManualControlSheet)

	srv, _ := NewServer(&stub{tables: tables}, nil, false)
	srv.now = func() time.Time {
		return time.Date(2023, time.May, 3, 12, 0, 0, 0, time.Local)
	}

	code, body := get(t, srv, "/?mode=day&date=2023-05-03")

	if code != http.StatusOK {
		t.Fatalf("Incorrect status code - expected:%v, got:%v", http.StatusOK, code)
	}

	if !strings.Contains(body, "3-ch83080_example.com_bm_news") {
		t.Errorf("Expected dashboard to render without the Manual Control sheet")
	}

	// rows without a control entry have a blank status - the badge is the
	// neutral grey, not the paused colour
	if !strings.Contains(body, "#666666") {
		t.Errorf("Expected neutral status badges for rows without a control entry")
	}

	if strings.Contains(body, "#5c5b5b") {
		t.Errorf("Expected no paused status badges for rows without a control entry")
	}
}

func TestAdSetUpdate(t *testing.T) {
	expected := []facebook.Update{
		{AdSetID: "23851234567890123", AdName: "3-ch83080_example.com_bm_news", DailyBudget: 20000},
	}

	adsets := recorder{}
	srv := server(t, &adsets)

	changes := []adSetChange{
		{
			AdSetID:       "'23851234567890123",
			AdName:        "3-ch83080_example.com_bm_news",
			NewBudget:     200,
			CurrentBudget: 150,
			NewStatus:     "ACTIVE",
			CurrentStatus: "ACTIVE",
		},
		{
			AdSetID:       "23859876543210987",
			AdName:        "1-ch91210_example.org_tb_sport",
			NewBudget:     0,
			CurrentBudget: 90.5,
			NewStatus:     "PAUSED",
			CurrentStatus: "PAUSED",
		},
	}

	b, _ := json.Marshal(changes)

	w := httptest.NewRecorder()
	rq := httptest.NewRequest(http.MethodPost, "/adsets/update", bytes.NewReader(b))

	srv.Routes().ServeHTTP(w, rq)

	if w.Code != http.StatusOK {
		t.Fatalf("Incorrect status code - expected:%v, got:%v", http.StatusOK, w.Code)
	}

	if !reflect.DeepEqual(adsets.updates, expected) {
		t.Errorf("Incorrect updates\n   expected: %v\n   got:      %v\n", expected, adsets.updates)
	}

	response := struct {
		Applied int `json:"applied"`
		Skipped int `json:"skipped"`
	}{}

	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Unexpected error unmarshalling response (%v)", err)
	}

	if response.Applied != 1 || response.Skipped != 1 {
		t.Errorf("Incorrect response - expected 1 applied/1 skipped, got %v/%v", response.Applied, response.Skipped)
	}
}

func TestAdSetUpdateWithoutClient(t *testing.T) {
	srv, _ := NewServer(&stub{tables: fixtures()}, nil, false)

	w := httptest.NewRecorder()
	rq := httptest.NewRequest(http.MethodPost, "/adsets/update", strings.NewReader("[]"))

	srv.Routes().ServeHTTP(w, rq)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Incorrect status code - expected:%v, got:%v", http.StatusServiceUnavailable, w.Code)
	}
}

func TestAdSetUpdateWithGet(t *testing.T) {
	srv := server(t, &recorder{})

	code, _ := get(t, srv, "/adsets/update")

	if code != http.StatusMethodNotAllowed {
		t.Errorf("Incorrect status code - expected:%v, got:%v", http.StatusMethodNotAllowed, code)
	}
}
