package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cashflow"
	md "github.com/nao1215/markdown"
)

// PlanOptions holds configuration for rendering a plan report.
type PlanOptions struct {
	Threshold cashflow.Money // Threshold marks balances below it with a warning; zero disables the check.
	ShowPast  bool           // ShowPast renders the reconciliation section between snapshot and anchor.
}

// PlanMarkdown renders a projected plan as a markdown report.
func PlanMarkdown(p *cashflow.Plan, opts PlanOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cashflow %s to %s", p.Anchor, p.End))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Starting Balance"),
			md.Bold(p.StartingBalance.String()),
		},
		Rows: [][]string{
			{fmt.Sprintf("Snapshot on %s", p.Snapshot.Date), p.Snapshot.Balance.String()},
		},
	})

	if opts.ShowPast && len(p.Past) > 0 {
		doc.H2("Since Snapshot")
		doc.Table(transactionTable(p.Past, opts))
	}

	doc.H2("Projected Transactions")
	if len(p.Transactions) == 0 {
		doc.PlainText("No transactions in this horizon.")
	} else {
		doc.Table(transactionTable(p.Transactions, opts))
	}

	min, on := p.MinBalance()
	if !opts.Threshold.IsZero() && min.LessThan(opts.Threshold) {
		doc.PlainTextf("**Warning**: balance drops to %s on %s, below %s.",
			min.String(), on, opts.Threshold.String())
	} else {
		doc.PlainTextf("Lowest balance: %s on %s.", min.String(), on)
	}

	return doc.String()
}

func transactionTable(txs []cashflow.ProjectedTransaction, opts PlanOptions) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Description", "Amount", "Balance"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		desc := tx.Description
		if tx.OneTime {
			desc = desc + " *"
		}
		balance := tx.Balance.String()
		if !opts.Threshold.IsZero() && tx.Balance.LessThan(opts.Threshold) {
			balance = md.Bold(balance)
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			desc,
			tx.Amount.SignedString(),
			balance,
		})
	}
	return table
}
