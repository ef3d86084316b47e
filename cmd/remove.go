package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktrack"
	"github.com/google/subcommands"
)

type removeCmd struct {
	ticker string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a position from the portfolio" }
func (*removeCmd) Usage() string {
	return `st remove -ticker <T>

  Deletes the position for the given ticker and persists the reduced ledger.
  Removing a ticker that is not held is reported but is not an error.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol to remove, e.g. AAPL (required)")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: the -ticker flag is required.")
		return subcommands.ExitUsageError
	}

	err := openStore().Remove(c.ticker)
	if errors.Is(err, stocktrack.ErrNotFound) {
		// Reported, not fatal: the ledger is unchanged.
		fmt.Printf("%v\n", err)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ %s removed from portfolio.\n", c.ticker)
	return subcommands.ExitSuccess
}
