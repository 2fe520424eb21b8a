package commands

import (
	"flag"
	"fmt"
	"log"
	"regexp"
	"strings"
)

const APP = "predicto-ads-dashboard"
const VERSION = "v0.1.0"

// Command is the interface implemented by the CLI subcommands in the
// main() command list.
type Command interface {
	Name() string
	FlagSet() *flag.FlagSet
	Description() string
	Usage() string
	Help()
	Execute(args ...interface{}) error
}

// Options is the set of 'global' command line options that apply across
// all subcommands.
type Options struct {
	Debug bool
}

type command struct {
	credentials string
	spreadsheet string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account 'credentials.json' file. Defaults to the "+CREDENTIALS_ENV+" environment variable")
	flagset.StringVar(&c.spreadsheet, "url", c.spreadsheet, "Spreadsheet URL or ID")

	return flagset
}

// Parse matches the first command line argument against the list of
// subcommands and parses the remaining arguments against the matched
// subcommand's flagset.
func Parse(cli []Command, args []string) (Command, error) {
	if len(args) > 0 {
		for _, c := range cli {
			if c.Name() == args[0] {
				flagset := c.FlagSet()
				if flagset == nil {
					return nil, fmt.Errorf("'%s' command implementation does not have a flagset", c.Name())
				}

				return c, flagset.Parse(args[1:])
			}
		}
	}

	return nil, nil
}

// Help prints the top level usage and the list of subcommands.
func Help(cli []Command) {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, c := range cli {
		fmt.Printf("    %-9s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific options\n", APP)
	fmt.Println()
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

// spreadsheetID extracts the spreadsheet ID from a docs.google.com URL.
// A value that is not a URL is assumed to be a bare spreadsheet ID.
func spreadsheetID(url string) (string, error) {
	v := strings.TrimSpace(url)

	if strings.HasPrefix(v, "https://") {
		match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(v)
		if len(match) < 2 {
			return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
		}

		return match[1], nil
	}

	if v == "" {
		return "", fmt.Errorf("invalid spreadsheet ID")
	}

	return v, nil
}

func debugf(format string, args ...interface{}) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...interface{}) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...interface{}) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
