package cashflow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLedgerMissingFile(t *testing.T) {
	ledger, err := LoadLedger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ledger.NumRecords() != 0 {
		t.Errorf("a missing ledger file should load as empty, got %d records", ledger.NumRecords())
	}
}

func TestSaveAndLoadLedger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	ledger := NewLedger()
	if err := ledger.Append(
		NewRecurringRule("Salary", M(52000), 25),
		NewOneTimeEntry("Repair", M(-3200), MustParse("2025-10-05")),
		NewBalanceSnapshot(MustParse("2025-10-13"), M(22158)),
	); err != nil {
		t.Fatal(err)
	}

	if err := SaveLedger(dir, ledger); err != nil {
		t.Fatal(err)
	}

	back, err := LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}
	if back.NumRecords() != 3 {
		t.Fatalf("want 3 records after reload, got %d", back.NumRecords())
	}
	for r := range back.Recurring() {
		if r.Description != "Salary" || !r.Amount.Equal(M(52000)) {
			t.Errorf("bad recurring rule after reload: %+v", r)
		}
	}

	// No temporary file should survive a successful save.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != LedgerFileName {
		t.Errorf("data directory should contain only %s, got %v", LedgerFileName, entries)
	}
}
