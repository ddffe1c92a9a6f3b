package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as JSON or CSV" }
func (*exportCmd) Usage() string {
	return `cf export [-format json|csv] [-o <file>]

  Writes the whole ledger to stdout (or a file) for use in a spreadsheet or
  another tool.

Usage Examples:
# A JSON dump on stdout.
$ cf export

# A CSV for a spreadsheet.
$ cf export -format csv -o ledger.csv

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or csv.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	switch c.format {
	case "json":
		err = exportJSON(out, ledger)
	case "csv":
		err = exportCSV(out, ledger)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want json or csv.\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func exportJSON(w io.Writer, ledger *cashflow.Ledger) error {
	doc := struct {
		Recurring []cashflow.RecurringRule   `json:"recurring"`
		OneTime   []cashflow.OneTimeEntry    `json:"oneTime"`
		Balances  []cashflow.BalanceSnapshot `json:"balances"`
	}{
		Recurring: []cashflow.RecurringRule{},
		OneTime:   []cashflow.OneTimeEntry{},
		Balances:  []cashflow.BalanceSnapshot{},
	}
	for r := range ledger.Recurring() {
		doc.Recurring = append(doc.Recurring, r)
	}
	for e := range ledger.OneTime() {
		doc.OneTime = append(doc.OneTime, e)
	}
	for s := range ledger.Snapshots() {
		doc.Balances = append(doc.Balances, s)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func exportCSV(w io.Writer, ledger *cashflow.Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"record", "id", "date", "day", "description", "amount", "active", "createdAt"}); err != nil {
		return err
	}
	for r := range ledger.Recurring() {
		if err := cw.Write([]string{
			string(cashflow.RecRecurring), r.ID.String(), "", strconv.Itoa(r.Day),
			r.Description, r.Amount.Decimal().String(), strconv.FormatBool(r.Active),
			r.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	for e := range ledger.OneTime() {
		if err := cw.Write([]string{
			string(cashflow.RecOneTime), e.ID.String(), e.Date.String(), "",
			e.Description, e.Amount.Decimal().String(), "",
			e.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	for s := range ledger.Snapshots() {
		if err := cw.Write([]string{
			string(cashflow.RecBalance), s.ID.String(), s.Date.String(), "",
			"", s.Balance.Decimal().String(), "",
			s.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
