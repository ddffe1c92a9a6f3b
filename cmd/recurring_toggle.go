package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// toggleRecurringCmd implements both 'enable-recurring' and
// 'disable-recurring', which only differ in the Active value they set.
type toggleRecurringCmd struct {
	name   string
	active bool
}

func newEnableRecurringCmd() *toggleRecurringCmd {
	return &toggleRecurringCmd{name: "enable-recurring", active: true}
}

func newDisableRecurringCmd() *toggleRecurringCmd {
	return &toggleRecurringCmd{name: "disable-recurring", active: false}
}

func (c *toggleRecurringCmd) Name() string { return c.name }
func (c *toggleRecurringCmd) Synopsis() string {
	if c.active {
		return "include a recurring rule in projections again"
	}
	return "exclude a recurring rule from projections without deleting it"
}
func (c *toggleRecurringCmd) Usage() string {
	return fmt.Sprintf(`cf %s <id>

  A disabled rule stays in the ledger but is ignored by projections. Use it
  for a paused subscription you expect to resume.
`, c.name)
}

func (c *toggleRecurringCmd) SetFlags(f *flag.FlagSet) {}

func (c *toggleRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: %s expects exactly one rule ID.\n", c.name)
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
	rule.Active = c.active

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state := "disabled"
	if c.active {
		state = "enabled"
	}
	fmt.Printf("Recurring rule %s (%s) %s.\n", rule.ID.Short(), rule.Description, state)
	return subcommands.ExitSuccess
}
