package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/predicto/predicto-ads-dashboard/dashboard"
	"github.com/predicto/predicto-ads-dashboard/facebook"
)

var ServeCmd = Serve{
	command: command{
		credentials: "",
		spreadsheet: DEFAULT_SPREADSHEET,
		debug:       false,
	},

	addr: DEFAULT_ADDR,
}

type Serve struct {
	command
	addr string
}

func (cmd *Serve) Name() string {
	return "serve"
}

func (cmd *Serve) Description() string {
	return "Runs the ads dashboard web server"
}

func (cmd *Serve) Usage() string {
	return "--credentials <file> --url <url> --addr <address>"
}

func (cmd *Serve) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] serve [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the web server for the ROAS dashboard and the 'Rules' sheet viewer")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Ad set updates are enabled when the FB_APP_ID, FB_APP_SECRET and FB_ACCESS_TOKEN")
	fmt.Println("  environment variables are set")
	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    predicto-ads-dashboard --debug serve --credentials "credentials.json" --addr ":8080"`)
	fmt.Println()
}

func (cmd *Serve) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("serve")

	flagset.StringVar(&cmd.addr, "addr", cmd.addr, "Address to listen on e.g. ':8080'")

	return flagset
}

func (cmd *Serve) Execute(args ...interface{}) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	spreadsheet, err := spreadsheetID(cmd.spreadsheet)
	if err != nil {
		return err
	}

	b, err := credentials(cmd.credentials)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s", spreadsheet)
	}

	source := worksheets{
		credentials: b,
		spreadsheet: spreadsheet,
	}

	var adsets dashboard.AdSets

	appID := os.Getenv("FB_APP_ID")
	appSecret := os.Getenv("FB_APP_SECRET")
	accessToken := os.Getenv("FB_ACCESS_TOKEN")

	if appID != "" && appSecret != "" && accessToken != "" {
		adsets = facebook.NewClient(appID, appSecret, accessToken)
	} else {
		warnf("Facebook credentials not configured - ad set updates are disabled")
	}

	server, err := dashboard.NewServer(&source, adsets, cmd.debug)
	if err != nil {
		return fmt.Errorf("unable to initialise dashboard (%v)", err)
	}

	infof("Listening on %s", cmd.addr)

	return server.Run(cmd.addr)
}
