package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocktrack"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrites the ledger file into its canonical form" }
func (*fmtCmd) Usage() string {
	return `st fmt

  Reads the ledger file and writes it back in canonical CSV form: normalized
  header, uppercase tickers, plain decimal numbers.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := stocktrack.LoadLedger(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := stocktrack.SaveLedger(*ledgerFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Ledger file %q has been formatted.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
