/*
Package predicto-ads-dashboard serves a web dashboard for ad performance data stored in a Google Sheets
spreadsheet.

The dashboard renders the ROAS worksheet as a filterable report with day and date range views, renders
the 'Rules' worksheet as a read-only table and (optionally) applies budget and status changes to the
matching Facebook ad sets.

predicto-ads-dashboard supports the following commands:

  - serve, to run the dashboard web server
  - get, to download a worksheet as a TSV or XLSX file
  - version, to display the version information
*/
package dashboard
