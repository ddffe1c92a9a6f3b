package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// setBalanceCmd holds the flags for the 'set-balance' subcommand.
type setBalanceCmd struct {
	date string
}

func (*setBalanceCmd) Name() string     { return "set-balance" }
func (*setBalanceCmd) Synopsis() string { return "record the observed account balance" }
func (*setBalanceCmd) Usage() string {
	return `cf set-balance [-d <date>] <amount>

  Records a balance snapshot. Projections always start from the latest
  snapshot, so set one whenever the real account balance is known.

Usage Examples:
# Today's balance.
$ cf set-balance 22158

# Backdated snapshot.
$ cf set-balance -d 2025-10-01 24000

`
}

func (c *setBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date the balance was observed (defaults to today).")
}

func (c *setBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: set-balance expects exactly one amount.")
		return subcommands.ExitUsageError
	}
	amount, err := cashflow.ParseMoney(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	on := cashflow.Today()
	if c.date != "" {
		on, err = cashflow.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	snap := ledger.SetBalance(on, amount)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Balance on %s set to %s.\n", snap.Date, snap.Balance)
	return subcommands.ExitSuccess
}
