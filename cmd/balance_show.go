package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the latest balance snapshot and its history" }
func (*balanceCmd) Usage() string {
	return `cf balance

  Shows the latest recorded balance and earlier snapshots.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var snaps []cashflow.BalanceSnapshot
	for s := range ledger.Snapshots() {
		snaps = append(snaps, s)
	}
	printMarkdown(renderer.BalanceMarkdown(snaps))
	return subcommands.ExitSuccess
}
