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

// listRecurringCmd holds the flags for the 'list-recurring' subcommand.
type listRecurringCmd struct {
	all bool
}

func (*listRecurringCmd) Name() string     { return "list-recurring" }
func (*listRecurringCmd) Synopsis() string { return "list recurring rules sorted by day of month" }
func (*listRecurringCmd) Usage() string {
	return `cf list-recurring [-all]

  Lists recurring rules with their short IDs, sorted by day of month.
  Inactive rules are hidden unless -all is given.
`
}

func (c *listRecurringCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include inactive rules.")
}

func (c *listRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var rules []cashflow.RecurringRule
	for r := range ledger.Recurring() {
		if !c.all && !r.Active {
			continue
		}
		rules = append(rules, r)
	}
	printMarkdown(renderer.RecurringMarkdown(rules))
	return subcommands.ExitSuccess
}
