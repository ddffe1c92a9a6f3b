package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteRecurringCmd holds the flags for the 'delete-recurring' subcommand.
type deleteRecurringCmd struct{}

func (*deleteRecurringCmd) Name() string     { return "delete-recurring" }
func (*deleteRecurringCmd) Synopsis() string { return "delete a recurring rule" }
func (*deleteRecurringCmd) Usage() string {
	return `cf delete-recurring <id>

  Permanently removes a rule from the ledger. To keep the rule around but
  out of projections, use disable-recurring instead.
`
}

func (c *deleteRecurringCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete-recurring expects exactly one rule ID.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := ledger.RemoveRecurring(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted recurring rule %s (%s).\n", removed.ID.Short(), removed.Description)
	return subcommands.ExitSuccess
}
