package cashflow

import (
	"errors"
	"testing"
	"time"
)

func TestLedgerAppendAndSort(t *testing.T) {
	l := NewLedger()
	e1 := NewOneTimeEntry("Transfer", M(10000), MustParse("2025-10-28"))
	e2 := NewOneTimeEntry("Repair", M(-3200), MustParse("2025-10-05"))
	if err := l.Append(e1, e2); err != nil {
		t.Fatal(err)
	}

	var dates []Date
	for e := range l.OneTime() {
		dates = append(dates, e.Date)
	}
	if len(dates) != 2 || dates[0] != MustParse("2025-10-05") || dates[1] != MustParse("2025-10-28") {
		t.Errorf("one-time entries not in chronological order: %v", dates)
	}
}

func TestLedgerSameDateTiebreak(t *testing.T) {
	l := NewLedger()
	on := MustParse("2025-10-05")
	first := NewOneTimeEntry("first", M(1), on)
	second := NewOneTimeEntry("second", M(2), on)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	if err := l.Append(second, first); err != nil {
		t.Fatal(err)
	}
	var descs []string
	for e := range l.OneTime() {
		descs = append(descs, e.Description)
	}
	if descs[0] != "first" || descs[1] != "second" {
		t.Errorf("same-date entries should order by creation time, got %v", descs)
	}
}

func TestLedgerRejectsInvalid(t *testing.T) {
	l := NewLedger()
	if err := l.Append(NewRecurringRule("bad day", M(-1), 42)); err == nil {
		t.Error("expected validation error for day 42")
	}
	if l.NumRecords() != 0 {
		t.Errorf("invalid record must not be stored, got %d records", l.NumRecords())
	}
}

func TestLedgerFindAndRemove(t *testing.T) {
	l := NewLedger()
	rule := NewRecurringRule("Netflix", M(-478), 14)
	if err := l.Append(rule); err != nil {
		t.Fatal(err)
	}

	found, err := l.FindRecurring(rule.ID.Short())
	if err != nil {
		t.Fatal(err)
	}
	if found.ID != rule.ID {
		t.Errorf("found %s, want %s", found.ID, rule.ID)
	}

	// Edits through the returned pointer persist.
	found.Active = false
	again, err := l.FindRecurring(rule.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if again.Active {
		t.Error("edit through FindRecurring pointer was lost")
	}

	removed, err := l.RemoveRecurring(rule.ID.Short())
	if err != nil {
		t.Fatal(err)
	}
	if removed.ID != rule.ID {
		t.Errorf("removed %s, want %s", removed.ID, rule.ID)
	}
	if _, err := l.FindRecurring(rule.ID.Short()); !errors.Is(err, ErrUnknownID) {
		t.Errorf("rule should be gone, got %v", err)
	}
}

func TestLedgerSetBalanceUpsert(t *testing.T) {
	l := NewLedger()
	on := MustParse("2025-10-13")
	l.SetBalance(on, M(22158))
	l.SetBalance(on, M(20000))
	l.SetBalance(MustParse("2025-09-01"), M(18000))

	var snaps []BalanceSnapshot
	for s := range l.Snapshots() {
		snaps = append(snaps, s)
	}
	if len(snaps) != 2 {
		t.Fatalf("want one snapshot per day, got %d", len(snaps))
	}
	if snaps[0].Date != MustParse("2025-09-01") {
		t.Errorf("snapshots not sorted: %v first", snaps[0].Date)
	}
	if !snaps[1].Balance.Equal(M(20000)) {
		t.Errorf("same-day snapshot should be replaced, got %v", snaps[1].Balance)
	}
}
