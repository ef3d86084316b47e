// Package cmd implements the CLI application to manage the stock portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stocktrack"
	"github.com/etnz/stocktrack/quote"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in the order they are registered.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&reportCmd{},
	&overviewCmd{},
	&removeCmd{},
	&fmtCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "portfolio.csv", "Path to the portfolio ledger file (CSV format)")

// openStore returns the store for the application's ledger file.
func openStore() *stocktrack.Store {
	return stocktrack.NewStore(*ledgerFile)
}

// newQuoteClient builds the price-lookup client from the environment.
func newQuoteClient() (*quote.Client, error) {
	cfg, err := quote.LoadConfig()
	if err != nil {
		return nil, err
	}
	return quote.New(cfg), nil
}

// printMarkdown pretty-prints markdown to the terminal, falling back to the
// raw text when the terminal renderer is not usable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
