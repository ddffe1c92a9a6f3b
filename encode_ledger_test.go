package cashflow

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	input := `{"record":"recurring","id":"a1b2c3d4-0000-1111-2222-333333333333","description":"Netflix","amount":-478,"day":14,"active":true,"createdAt":"2025-10-13T09:30:00Z"}
{"record":"one-time","id":"b1b2c3d4-0000-1111-2222-333333333333","description":"Transfer","amount":10000,"date":"2025-10-28","createdAt":"2025-10-13T09:31:00Z"}

{"record":"balance","id":"c1b2c3d4-0000-1111-2222-333333333333","date":"2025-10-13","balance":22158,"createdAt":"2025-10-13T09:32:00Z"}
`
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.NumRecords() != 3 {
		t.Fatalf("want 3 records, got %d", ledger.NumRecords())
	}
	for r := range ledger.Recurring() {
		if r.Description != "Netflix" || r.Day != 14 || !r.Active {
			t.Errorf("bad recurring rule: %+v", r)
		}
		if !r.Amount.Equal(M(-478)) {
			t.Errorf("bad amount: %v", r.Amount)
		}
	}
	for s := range ledger.Snapshots() {
		if s.Date != MustParse("2025-10-13") || !s.Balance.Equal(M(22158)) {
			t.Errorf("bad snapshot: %+v", s)
		}
	}
}

func TestDecodeLedgerUnknownRecord(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader(`{"record":"mystery"}`))
	if err == nil {
		t.Fatal("expected error for unknown record type")
	}
}

func TestEncodeLedgerCanonical(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Append(
		NewOneTimeEntry("Transfer", M(10000), MustParse("2025-10-28")),
		NewRecurringRule("Netflix", M(-478), 14),
		NewBalanceSnapshot(MustParse("2025-10-13"), M(22158)),
	); err != nil {
		t.Fatal(err)
	}

	var first, second bytes.Buffer
	if err := EncodeLedger(&first, ledger); err != nil {
		t.Fatal(err)
	}
	if err := EncodeLedger(&second, ledger); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("encoding the same ledger twice must be byte-identical")
	}

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d", len(lines))
	}
	// Recurring first, then one-time, then snapshots.
	wantPrefix := []string{`{"record":"recurring"`, `{"record":"one-time"`, `{"record":"balance"`}
	for i, line := range lines {
		if !strings.HasPrefix(line, wantPrefix[i]) {
			t.Errorf("line %d = %s, want prefix %s", i, line, wantPrefix[i])
		}
	}

	// Amounts are encoded as bare numbers.
	if !strings.Contains(lines[0], `"amount":-478,`) {
		t.Errorf("amount should be a bare number: %s", lines[0])
	}

	// Round trip.
	back, err := DecodeLedger(&first)
	if err != nil {
		t.Fatal(err)
	}
	if back.NumRecords() != 3 {
		t.Errorf("round trip lost records: %d", back.NumRecords())
	}
}
