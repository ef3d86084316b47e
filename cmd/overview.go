package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktrack"
	"github.com/etnz/stocktrack/renderer"
	"github.com/google/subcommands"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display current prices for all supported companies" }
func (*overviewCmd) Usage() string {
	return `st overview

  Displays the current market price for every company in the reference
  catalog, whether held or not. Companies whose price is unavailable are
  skipped.
`
}

func (*overviewCmd) SetFlags(f *flag.FlagSet) {}

func (c *overviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newQuoteClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	listings := stocktrack.MarketOverview(stocktrack.DefaultCatalog(), client.LookupFunc(ctx))
	printMarkdown(renderer.OverviewMarkdown(listings))
	return subcommands.ExitSuccess
}
