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

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the portfolio valuation report" }
func (*reportCmd) Usage() string {
	return `st report

  Values every position at the current market price and displays invested
  cost, current value, profit/loss and allocation per position, with
  portfolio totals. Positions whose price is unavailable keep their invested
  figure but are excluded from the totals.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Println("Portfolio is empty.")
		return subcommands.ExitSuccess
	}

	client, err := newQuoteClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := stocktrack.NewReport(ledger, client.LookupFunc(ctx))
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
