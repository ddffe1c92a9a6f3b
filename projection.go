package cashflow

import (
	"errors"
	"sort"
	"time"
)

// ErrNoBalanceAnchor is returned when a projection is requested on a ledger
// that has no balance snapshot to start from.
var ErrNoBalanceAnchor = errors.New("no balance snapshot recorded, set one first")

// ProjectedTransaction is a single dated movement in a plan, with the balance
// after applying it.
type ProjectedTransaction struct {
	Date        Date
	Description string
	Amount      Money
	OneTime     bool // OneTime distinguishes one-time entries from recurring occurrences.
	Balance     Money
}

// Plan is the result of projecting a ledger forward from its latest balance
// snapshot.
type Plan struct {
	Anchor          Date            // Anchor is the day the projection starts from, usually today.
	End             Date            // End is the last day covered, Anchor plus the horizon.
	Snapshot        BalanceSnapshot // Snapshot is the balance anchor the plan reconciles from.
	StartingBalance Money           // StartingBalance is the snapshot balance with past movements applied.
	Past            []ProjectedTransaction
	Transactions    []ProjectedTransaction
}

// MinBalance returns the lowest balance reached by the plan and the date it
// happens on. The starting balance counts: a plan with no transactions
// bottoms out at its anchor.
func (p *Plan) MinBalance() (Money, Date) {
	min, on := p.StartingBalance, p.Anchor
	for _, tx := range p.Transactions {
		if tx.Balance.LessThan(min) {
			min, on = tx.Balance, tx.Date
		}
	}
	return min, on
}

// LatestSnapshot returns the balance snapshot with the most recent date. When
// several snapshots share that date, the first recorded wins.
func (l *Ledger) LatestSnapshot() (BalanceSnapshot, error) {
	var best BalanceSnapshot
	found := false
	for s := range l.Snapshots() {
		if !found || s.Date.After(best.Date) {
			best, found = s, true
		}
	}
	if !found {
		return BalanceSnapshot{}, ErrNoBalanceAnchor
	}
	return best, nil
}

// occurrence is a single dated movement before balances are folded in.
type occurrence struct {
	date        Date
	description string
	amount      Money
	oneTime     bool
	createdAt   time.Time
}

// expandRule walks a month pointer from the day after 'after' through the
// month of 'until', emitting one occurrence per month on the rule's day,
// clamped to the month length (a day-31 rule lands on Feb 28, or Feb 29 in a
// leap year). Occurrences are kept when strictly after 'after' and at most
// 'until'. The pointer advances by nextMonth, so its own day is preserved and
// never clamped; each occurrence date is resolved fresh from the rule's day.
func expandRule(rule RecurringRule, after, until Date) []occurrence {
	if !rule.Active {
		return nil
	}
	var out []occurrence
	for ptr := after; ; ptr = ptr.nextMonth() {
		if NewDate(ptr.Year(), ptr.Month(), 1).After(until) {
			break
		}
		occ := ResolveDayInMonth(ptr.Year(), ptr.Month(), rule.Day)
		if occ.After(after) && !occ.After(until) {
			out = append(out, occurrence{
				date:        occ,
				description: rule.Description,
				amount:      rule.Amount,
				createdAt:   rule.CreatedAt,
			})
		}
	}
	return out
}

// sortOccurrences orders occurrences by date, breaking ties by record
// creation time so two projections of the same ledger are identical.
func sortOccurrences(occs []occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		if c := occs[i].date.Compare(occs[j].date); c != 0 {
			return c < 0
		}
		return occs[i].createdAt.Before(occs[j].createdAt)
	})
}

// pastOccurrences collects the movements between the snapshot date and the
// anchor. Recurring occurrences on the anchor itself are included, because
// by end of that day they have happened; one-time entries on the anchor are
// not, they belong to the projection ahead.
func (l *Ledger) pastOccurrences(snapshot, anchor Date) []occurrence {
	var out []occurrence
	for rule := range l.Recurring() {
		out = append(out, expandRule(rule, snapshot, anchor)...)
	}
	for e := range l.OneTime() {
		if e.Date.After(snapshot) && e.Date.Before(anchor) {
			out = append(out, occurrence{
				date:        e.Date,
				description: e.Description,
				amount:      e.Amount,
				oneTime:     true,
				createdAt:   e.CreatedAt,
			})
		}
	}
	sortOccurrences(out)
	return out
}

// futureOccurrences collects the movements from the anchor to the end of the
// horizon. The window mirrors pastOccurrences: recurring occurrences start
// strictly after the anchor, one-time entries on the anchor are still ahead
// and included.
func (l *Ledger) futureOccurrences(anchor, end Date) []occurrence {
	var out []occurrence
	for rule := range l.Recurring() {
		out = append(out, expandRule(rule, anchor, end)...)
	}
	for e := range l.OneTime() {
		if !e.Date.Before(anchor) && !e.Date.After(end) {
			out = append(out, occurrence{
				date:        e.Date,
				description: e.Description,
				amount:      e.Amount,
				oneTime:     true,
				createdAt:   e.CreatedAt,
			})
		}
	}
	sortOccurrences(out)
	return out
}

// fold turns occurrences into projected transactions, threading a running
// balance. It returns the rows and the final balance.
func fold(occs []occurrence, balance Money) ([]ProjectedTransaction, Money) {
	rows := make([]ProjectedTransaction, 0, len(occs))
	for _, o := range occs {
		balance = balance.Add(o.amount)
		rows = append(rows, ProjectedTransaction{
			Date:        o.date,
			Description: o.description,
			Amount:      o.amount,
			OneTime:     o.oneTime,
			Balance:     balance,
		})
	}
	return rows, balance
}

// Project builds a cashflow plan from the anchor date over the given number
// of days. It reconciles the latest balance snapshot up to the anchor, then
// expands every movement through the horizon with a running balance.
//
// A zero or negative horizon yields a plan with a starting balance and no
// transactions.
func (l *Ledger) Project(anchor Date, horizonDays int) (*Plan, error) {
	snapshot, err := l.LatestSnapshot()
	if err != nil {
		return nil, err
	}
	end := anchor.Add(horizonDays)

	past, starting := fold(l.pastOccurrences(snapshot.Date, anchor), snapshot.Balance)
	future, _ := fold(l.futureOccurrences(anchor, end), starting)

	return &Plan{
		Anchor:          anchor,
		End:             end,
		Snapshot:        snapshot,
		StartingBalance: starting,
		Past:            past,
		Transactions:    future,
	}, nil
}
