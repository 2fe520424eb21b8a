package commands

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	api "github.com/uhppoted/uhppoted-lib/acl"

	"github.com/predicto/predicto-ads-dashboard/sheet"
)

// credentials returns the service account credentials, either from the
// file supplied on the command line or from the CREDENTIALS_ENV
// environment variable.
func credentials(file string) ([]byte, error) {
	if strings.TrimSpace(file) != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("unable to read credentials file (%v)", err)
		}

		return b, nil
	}

	if v := os.Getenv(CREDENTIALS_ENV); v != "" {
		return []byte(v), nil
	}

	return nil, fmt.Errorf("missing credentials - use --credentials or set %s", CREDENTIALS_ENV)
}

// authorize creates an HTTP client authorised for the scope using the
// service account credentials.
func authorize(credentials []byte, scope string) (*http.Client, error) {
	config, err := google.JWTConfigFromJSON(credentials, scope)
	if err != nil {
		return nil, err
	}

	return config.Client(context.Background()), nil
}

// worksheets is a dashboard.Source implementation that fetches
// worksheets from a Google Sheets spreadsheet. The Sheets client is
// created on every fetch so that a request never reuses stale
// credentials.
type worksheets struct {
	credentials []byte
	spreadsheet string
}

func (w *worksheets) Fetch(ctx context.Context, worksheet string) (*api.Table, error) {
	client, err := authorize(w.credentials, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	response, err := google.Spreadsheets.Values.Get(w.spreadsheet, sheet.Range(worksheet)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	return sheet.MakeTable(response), nil
}
