package renderer

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/etnz/cashflow"
	md "github.com/nao1215/markdown"
)

// RecurringMarkdown renders the recurring rules sorted by day of month.
func RecurringMarkdown(rules []cashflow.RecurringRule) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recurring Rules")
	if len(rules) == 0 {
		doc.PlainText("No recurring rules.")
		return doc.String()
	}

	sorted := make([]cashflow.RecurringRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Day", "Description", "Amount", "Status"},
		Rows:   [][]string{},
	}
	for _, r := range sorted {
		status := "active"
		if !r.Active {
			status = "inactive"
		}
		table.Rows = append(table.Rows, []string{
			r.ID.Short(),
			strconv.Itoa(r.Day),
			r.Description,
			r.Amount.SignedString(),
			status,
		})
	}
	doc.Table(table)
	return doc.String()
}

// OneTimeMarkdown renders one-time entries in chronological order.
func OneTimeMarkdown(entries []cashflow.OneTimeEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("One-Time Entries")
	if len(entries) == 0 {
		doc.PlainText("No one-time entries.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Description", "Amount"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.ID.Short(),
			e.Date.String(),
			e.Description,
			e.Amount.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// BalanceMarkdown renders the latest snapshot and its history.
func BalanceMarkdown(snapshots []cashflow.BalanceSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balance")
	if len(snapshots) == 0 {
		doc.PlainText("No balance snapshot recorded.")
		return doc.String()
	}

	latest := snapshots[len(snapshots)-1]
	doc.PlainTextf("Current balance: %s (observed %s).", md.Bold(latest.Balance.String()), latest.Date)

	if len(snapshots) > 1 {
		doc.H2("History")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Balance"},
			Rows:   [][]string{},
		}
		for i := len(snapshots) - 1; i >= 0; i-- {
			s := snapshots[i]
			table.Rows = append(table.Rows, []string{s.Date.String(), s.Balance.String()})
		}
		doc.Table(table)
	}
	return doc.String()
}
