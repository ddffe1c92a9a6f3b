package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// editRecurringCmd holds the flags for the 'edit-recurring' subcommand.
type editRecurringCmd struct {
	description string
	amount      string
	day         int
}

func (*editRecurringCmd) Name() string     { return "edit-recurring" }
func (*editRecurringCmd) Synopsis() string { return "edit a recurring rule" }
func (*editRecurringCmd) Usage() string {
	return `cf edit-recurring <id> [-desc <description>] [-amount <amount>] [-day <1-31>]

  Changes the given fields of a rule, identified by its full ID or a unique
  prefix of at least 8 characters. Omitted fields keep their value.

Usage Examples:
# The subscription got more expensive.
$ cf edit-recurring a1b2c3d4 -amount -529

`
}

func (c *editRecurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.IntVar(&c.day, "day", 0, "New day of month.")
}

func (c *editRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit-recurring expects exactly one rule ID.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rule, err := ledger.FindRecurring(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.description != "" {
		rule.Description = c.description
	}
	if c.amount != "" {
		amount, err := cashflow.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		rule.Amount = amount
	}
	if c.day != 0 {
		rule.Day = c.day
	}
	if err := rule.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated recurring rule %s: %s %s on day %d.\n", rule.ID.Short(), rule.Description, rule.Amount, rule.Day)
	return subcommands.ExitSuccess
}
