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

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	days      int
	threshold float64
	past      bool
	date      string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "project the balance over the coming days" }
func (*planCmd) Usage() string {
	return `cf plan [-days <n>] [-threshold <amount>] [-past] [-d <date>]

  Projects the account balance from the latest snapshot through the horizon,
  one row per upcoming movement with the balance after it.

Usage Examples:
# The default 30-day plan.
$ cf plan

# A quarter ahead, warning below 5000.
$ cf plan -days 90 -threshold 5000

`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Horizon in days.")
	f.Float64Var(&c.threshold, "threshold", 10000, "Warn when the balance drops below this amount. 0 disables the warning.")
	f.BoolVar(&c.past, "past", false, "Show movements between the snapshot and today.")
	f.StringVar(&c.date, "d", "", "Anchor date for the projection (defaults to today).")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	anchor := cashflow.Today()
	if c.date != "" {
		var err error
		anchor, err = cashflow.ParseDate(c.date)
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

	plan, err := ledger.Project(anchor, c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PlanMarkdown(plan, renderer.PlanOptions{
		Threshold: cashflow.M(c.threshold),
		ShowPast:  c.past,
	}))
	return subcommands.ExitSuccess
}
