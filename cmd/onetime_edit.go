package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// editOneTimeCmd holds the flags for the 'edit-onetime' subcommand.
type editOneTimeCmd struct {
	description string
	amount      string
	date        string
}

func (*editOneTimeCmd) Name() string     { return "edit-onetime" }
func (*editOneTimeCmd) Synopsis() string { return "edit a one-time entry" }
func (*editOneTimeCmd) Usage() string {
	return `cf edit-onetime <id> [-desc <description>] [-amount <amount>] [-on <date>]

  Changes the given fields of a one-time entry, identified by its full ID or
  a unique prefix of at least 8 characters. Omitted fields keep their value.
`
}

func (c *editOneTimeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.date, "on", "", "New date.")
}

func (c *editOneTimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit-onetime expects exactly one entry ID.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entry, err := ledger.FindOneTime(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.description != "" {
		entry.Description = c.description
	}
	if c.amount != "" {
		amount, err := cashflow.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		entry.Amount = amount
	}
	if c.date != "" {
		on, err := cashflow.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		entry.Date = on
	}
	if err := entry.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	// Sorting moves entries around, so keep a copy for the confirmation.
	updated := *entry
	ledger.Sort()

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated one-time entry %s: %s %s on %s.\n", updated.ID.Short(), updated.Description, updated.Amount, updated.Date)
	return subcommands.ExitSuccess
}
