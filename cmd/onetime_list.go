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

// listOneTimeCmd holds the flags for the 'list-onetime' subcommand.
type listOneTimeCmd struct {
	upcoming bool
}

func (*listOneTimeCmd) Name() string     { return "list-onetime" }
func (*listOneTimeCmd) Synopsis() string { return "list one-time entries in chronological order" }
func (*listOneTimeCmd) Usage() string {
	return `cf list-onetime [-upcoming]

  Lists one-time entries with their short IDs. With -upcoming, only entries
  dated today or later are shown.
`
}

func (c *listOneTimeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.upcoming, "upcoming", false, "Only entries dated today or later.")
}

func (c *listOneTimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := cashflow.Today()
	var entries []cashflow.OneTimeEntry
	for e := range ledger.OneTime() {
		if c.upcoming && e.Date.Before(today) {
			continue
		}
		entries = append(entries, e)
	}
	printMarkdown(renderer.OneTimeMarkdown(entries))
	return subcommands.ExitSuccess
}
