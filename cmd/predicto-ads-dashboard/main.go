package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/predicto/predicto-ads-dashboard/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.GetCmd,
	&commands.ServeCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 && args[0] == "help" {
		help(args[1:])
		os.Exit(0)
	}

	cmd, err := commands.Parse(cli, args)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		commands.Help(cli)
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func help(args []string) {
	if len(args) > 0 {
		for _, c := range cli {
			if c.Name() == args[0] {
				c.Help()
				return
			}
		}

		fmt.Printf("\nInvalid command '%s'\n\n", args[0])
	}

	commands.Help(cli)
}
