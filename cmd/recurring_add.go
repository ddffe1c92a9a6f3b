package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// addRecurringCmd holds the flags for the 'add-recurring' subcommand.
type addRecurringCmd struct {
	description string
	amount      string
	day         int
}

func (*addRecurringCmd) Name() string     { return "add-recurring" }
func (*addRecurringCmd) Synopsis() string { return "add a monthly recurring rule" }
func (*addRecurringCmd) Usage() string {
	return `cf add-recurring -desc <description> -amount <amount> -day <1-31>

  Adds a rule applied on a fixed day of every month. Positive amounts are
  income, negative ones are expenses. A day past the end of a month lands
  on its last day.

Usage Examples:
# A subscription on the 14th of every month.
$ cf add-recurring -desc "Netflix" -amount -478 -day 14

# A salary on the 25th.
$ cf add-recurring -desc "Salary" -amount 52000 -day 25

`
}

func (c *addRecurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Description of the rule.")
	f.StringVar(&c.amount, "amount", "", "Monthly amount, negative for an expense.")
	f.IntVar(&c.day, "day", 0, "Day of month the amount applies on, 1 to 31.")
}

func (c *addRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := cashflow.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rule := cashflow.NewRecurringRule(c.description, amount, c.day)
	if err := ledger.Append(rule); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added recurring rule %s: %s %s on day %d.\n", rule.ID.Short(), rule.Description, rule.Amount, rule.Day)
	return subcommands.ExitSuccess
}
