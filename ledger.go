package cashflow

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger holds the three kinds of records that drive a cashflow projection:
// recurring rules, one-time entries, and balance snapshots.
//
// In a Ledger, dated records are always in chronological order; recurring
// rules keep their creation order.
type Ledger struct {
	recurring []RecurringRule
	oneTime   []OneTimeEntry
	snapshots []BalanceSnapshot
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append validates and adds records to the ledger, keeping it sorted.
func (l *Ledger) Append(records ...Record) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("invalid %s record: %w", rec.What(), err)
		}
		switch v := rec.(type) {
		case RecurringRule:
			l.recurring = append(l.recurring, v)
		case OneTimeEntry:
			l.oneTime = append(l.oneTime, v)
		case BalanceSnapshot:
			l.snapshots = append(l.snapshots, v)
		default:
			return fmt.Errorf("unsupported record type %T", rec)
		}
	}
	l.stableSort()
	return nil
}

// stableSort sorts dated records by date, with the creation timestamp as a
// tiebreaker. Recurring rules keep their creation order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.oneTime, func(i, j int) bool {
		if c := l.oneTime[i].Date.Compare(l.oneTime[j].Date); c != 0 {
			return c < 0
		}
		return l.oneTime[i].CreatedAt.Before(l.oneTime[j].CreatedAt)
	})
	sort.SliceStable(l.snapshots, func(i, j int) bool {
		if c := l.snapshots[i].Date.Compare(l.snapshots[j].Date); c != 0 {
			return c < 0
		}
		return l.snapshots[i].CreatedAt.Before(l.snapshots[j].CreatedAt)
	})
	sort.SliceStable(l.recurring, func(i, j int) bool {
		return l.recurring[i].CreatedAt.Before(l.recurring[j].CreatedAt)
	})
}

// Recurring returns an iterator over the recurring rules in creation order.
func (l *Ledger) Recurring() iter.Seq[RecurringRule] {
	return func(yield func(RecurringRule) bool) {
		for _, r := range l.recurring {
			if !yield(r) {
				return
			}
		}
	}
}

// OneTime returns an iterator over the one-time entries in chronological order.
func (l *Ledger) OneTime() iter.Seq[OneTimeEntry] {
	return func(yield func(OneTimeEntry) bool) {
		for _, e := range l.oneTime {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshots returns an iterator over the balance snapshots in chronological order.
func (l *Ledger) Snapshots() iter.Seq[BalanceSnapshot] {
	return func(yield func(BalanceSnapshot) bool) {
		for _, s := range l.snapshots {
			if !yield(s) {
				return
			}
		}
	}
}

// NumRecords returns the total number of records in the ledger.
func (l *Ledger) NumRecords() int {
	return len(l.recurring) + len(l.oneTime) + len(l.snapshots)
}

// FindRecurring resolves ref (a full ID or a unique prefix of at least 8
// characters) to a recurring rule. The returned pointer aliases ledger state
// so callers can edit the rule in place.
func (l *Ledger) FindRecurring(ref string) (*RecurringRule, error) {
	ids := make([]ID, len(l.recurring))
	for i, r := range l.recurring {
		ids[i] = r.ID
	}
	id, err := resolveID(ref, ids)
	if err != nil {
		return nil, fmt.Errorf("recurring rule %q: %w", ref, err)
	}
	for i := range l.recurring {
		if l.recurring[i].ID == id {
			return &l.recurring[i], nil
		}
	}
	return nil, fmt.Errorf("recurring rule %q: %w", ref, ErrUnknownID)
}

// RemoveRecurring deletes the recurring rule identified by ref and returns it.
func (l *Ledger) RemoveRecurring(ref string) (RecurringRule, error) {
	rule, err := l.FindRecurring(ref)
	if err != nil {
		return RecurringRule{}, err
	}
	removed := *rule
	for i := range l.recurring {
		if l.recurring[i].ID == removed.ID {
			l.recurring = append(l.recurring[:i], l.recurring[i+1:]...)
			break
		}
	}
	return removed, nil
}

// FindOneTime resolves ref to a one-time entry. The returned pointer aliases
// ledger state so callers can edit the entry in place; callers that change
// the date must re-sort via Sort.
func (l *Ledger) FindOneTime(ref string) (*OneTimeEntry, error) {
	ids := make([]ID, len(l.oneTime))
	for i, e := range l.oneTime {
		ids[i] = e.ID
	}
	id, err := resolveID(ref, ids)
	if err != nil {
		return nil, fmt.Errorf("one-time entry %q: %w", ref, err)
	}
	for i := range l.oneTime {
		if l.oneTime[i].ID == id {
			return &l.oneTime[i], nil
		}
	}
	return nil, fmt.Errorf("one-time entry %q: %w", ref, ErrUnknownID)
}

// RemoveOneTime deletes the one-time entry identified by ref and returns it.
func (l *Ledger) RemoveOneTime(ref string) (OneTimeEntry, error) {
	entry, err := l.FindOneTime(ref)
	if err != nil {
		return OneTimeEntry{}, err
	}
	removed := *entry
	for i := range l.oneTime {
		if l.oneTime[i].ID == removed.ID {
			l.oneTime = append(l.oneTime[:i], l.oneTime[i+1:]...)
			break
		}
	}
	return removed, nil
}

// Sort restores chronological order after in-place edits.
func (l *Ledger) Sort() { l.stableSort() }

// SetBalance records the observed balance on a date. A snapshot already on
// that date is replaced, so the ledger keeps at most one snapshot per day.
func (l *Ledger) SetBalance(on Date, balance Money) BalanceSnapshot {
	for i := range l.snapshots {
		if l.snapshots[i].Date == on {
			l.snapshots[i].Balance = balance
			return l.snapshots[i]
		}
	}
	snap := NewBalanceSnapshot(on, balance)
	l.snapshots = append(l.snapshots, snap)
	l.stableSort()
	return snap
}
