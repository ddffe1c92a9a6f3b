package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// addOneTimeCmd holds the flags for the 'add-onetime' subcommand.
type addOneTimeCmd struct {
	description string
	amount      string
	date        string
}

func (*addOneTimeCmd) Name() string     { return "add-onetime" }
func (*addOneTimeCmd) Synopsis() string { return "add a single dated entry" }
func (*addOneTimeCmd) Usage() string {
	return `cf add-onetime -desc <description> -amount <amount> -on <date>

  Adds a one-off movement on a specific date: a planned transfer, a tax
  payment, an exceptional purchase.

Usage Examples:
# A transfer arriving at the end of the month.
$ cf add-onetime -desc "Transfer" -amount 10000 -on 2025-10-28

`
}

func (c *addOneTimeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Description of the entry.")
	f.StringVar(&c.amount, "amount", "", "Amount, negative for an expense.")
	f.StringVar(&c.date, "on", "", "Date the entry applies on (defaults to today).")
}

func (c *addOneTimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := cashflow.ParseMoney(c.amount)
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

	entry := cashflow.NewOneTimeEntry(c.description, amount, on)
	if err := ledger.Append(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added one-time entry %s: %s %s on %s.\n", entry.ID.Short(), entry.Description, entry.Amount, entry.Date)
	return subcommands.ExitSuccess
}
