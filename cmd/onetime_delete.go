package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteOneTimeCmd holds the flags for the 'delete-onetime' subcommand.
type deleteOneTimeCmd struct{}

func (*deleteOneTimeCmd) Name() string     { return "delete-onetime" }
func (*deleteOneTimeCmd) Synopsis() string { return "delete a one-time entry" }
func (*deleteOneTimeCmd) Usage() string {
	return `cf delete-onetime <id>

  Permanently removes a one-time entry from the ledger.
`
}

func (c *deleteOneTimeCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteOneTimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete-onetime expects exactly one entry ID.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := ledger.RemoveOneTime(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted one-time entry %s (%s).\n", removed.ID.Short(), removed.Description)
	return subcommands.ExitSuccess
}
