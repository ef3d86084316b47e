package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktrack"
	"github.com/google/subcommands"
)

type addCmd struct {
	company string
	shares  int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "buy shares of a company at the current market price" }
func (*addCmd) Usage() string {
	return `st add -company <name> -shares <n>

  Resolves the company name to its ticker, fetches the current price, and
  merges the purchase into the portfolio:
  - a new ticker creates a position,
  - an existing one accumulates shares, and the buy price is set to the
    current price.

Usage Examples:
$ st add -company Apple -shares 10

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "company", "", "Company name, e.g. \"Apple\" (required)")
	f.IntVar(&c.shares, "shares", 0, "Number of shares bought (required, positive)")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.company == "" {
		fmt.Fprintln(os.Stderr, "Error: the -company flag is required.")
		return subcommands.ExitUsageError
	}
	if c.shares <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -shares must be a positive number.")
		return subcommands.ExitUsageError
	}

	ticker, err := stocktrack.DefaultCatalog().Resolve(c.company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := newQuoteClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	price, err := client.Price(ctx, ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch current price: %v\n", err)
		return subcommands.ExitFailure
	}

	position, err := openStore().AddOrUpdate(ticker, c.shares, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ %s (%s) added at %s, now holding %s shares.\n", c.company, ticker, price, position.Shares)
	return subcommands.ExitSuccess
}
