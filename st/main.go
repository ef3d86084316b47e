package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stocktrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; a no-op outside of completion mode.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"add":      {Flags: map[string]complete.Predictor{"company": predict.Nothing, "shares": predict.Nothing}},
			"report":   {},
			"overview": {},
			"remove":   {Flags: map[string]complete.Predictor{"ticker": predict.Nothing}},
			"fmt":      {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
		},
	}
	completion.Complete("st")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
