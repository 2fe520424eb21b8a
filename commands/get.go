package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/predicto/predicto-ads-dashboard/sheet"
)

var GetCmd = Get{
	command: command{
		credentials: "",
		spreadsheet: DEFAULT_SPREADSHEET,
		debug:       false,
	},

	worksheet: DEFAULT_WORKSHEET,
	format:    "tsv",
	file:      "",
}

type Get struct {
	command
	worksheet string
	format    string
	file      string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a worksheet from the spreadsheet and stores it to a local file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --worksheet <name> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a worksheet to a TSV or XLSX file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    predicto-ads-dashboard --debug get --credentials "credentials.json" \`)
	fmt.Println(`                                       --worksheet "Rules" \`)
	fmt.Println(`                                       --format xlsx \`)
	fmt.Println(`                                       --file "rules.xlsx"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet name e.g. 'Rules'")
	flagset.StringVar(&cmd.format, "format", cmd.format, "File format - 'tsv' or 'xlsx'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "File name. Defaults to '<worksheet> <yyyy-mm-ddTHHmmss>.<format>'")

	return flagset
}

func (cmd *Get) Execute(args ...interface{}) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.worksheet) == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	spreadsheet, err := spreadsheetID(cmd.spreadsheet)
	if err != nil {
		return err
	}

	b, err := credentials(cmd.credentials)
	if err != nil {
		return err
	}

	file := cmd.file
	if file == "" {
		file = fmt.Sprintf("%s %s.%s", cmd.worksheet, time.Now().Format("2006-01-02T150405"), cmd.format)
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", spreadsheet, cmd.worksheet)
	}

	// ... fetch
	source := worksheets{
		credentials: b,
		spreadsheet: spreadsheet,
	}

	table, err := source.Fetch(context.Background(), cmd.worksheet)
	if err != nil {
		return err
	}

	if len(table.Header) == 0 {
		return fmt.Errorf("no data in worksheet '%s'", cmd.worksheet)
	}

	// ... store
	tmp, err := os.CreateTemp(os.TempDir(), "sheet")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	switch cmd.format {
	case "tsv":
		if err := sheet.ToTSV(tmp, table); err != nil {
			return fmt.Errorf("error creating TSV file (%v)", err)
		}

	case "xlsx":
		if err := sheet.ToXLSX(tmp, cmd.worksheet, table); err != nil {
			return fmt.Errorf("error creating XLSX file (%v)", err)
		}

	default:
		return fmt.Errorf("unsupported file format '%s'", cmd.format)
	}

	tmp.Close()

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), file); err != nil {
		return err
	}

	infof("Retrieved worksheet '%s' to file %s", cmd.worksheet, file)

	return nil
}
