package cashflow

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecordValidate(t *testing.T) {
	if err := NewRecurringRule("Netflix", M(-478), 14).Validate(); err != nil {
		t.Errorf("valid rule rejected: %v", err)
	}
	if err := NewRecurringRule("Netflix", M(-478), 0).Validate(); err == nil {
		t.Error("day 0 should be rejected")
	}
	if err := NewRecurringRule("Netflix", M(-478), 32).Validate(); err == nil {
		t.Error("day 32 should be rejected")
	}
	if err := NewRecurringRule("", M(-478), 14).Validate(); err == nil {
		t.Error("empty description should be rejected")
	}
	if err := NewOneTimeEntry("Transfer", M(10000), Date{}).Validate(); err == nil {
		t.Error("zero date should be rejected")
	}
	if err := NewBalanceSnapshot(NewDate(2025, 10, 13), M(22158)).Validate(); err != nil {
		t.Errorf("valid snapshot rejected: %v", err)
	}
}

func TestRecordMarshalOrder(t *testing.T) {
	rule := NewRecurringRule("Netflix", M(-478), 14)
	b, err := json.Marshal(rule)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	// Fields must appear in canonical order with the discriminator first.
	order := []string{`"record":"recurring"`, `"id":`, `"description":"Netflix"`, `"amount":-478`, `"day":14`, `"active":true`, `"createdAt":`}
	last := -1
	for _, part := range order {
		i := strings.Index(got, part)
		if i < 0 {
			t.Fatalf("missing %q in %s", part, got)
		}
		if i < last {
			t.Fatalf("%q out of order in %s", part, got)
		}
		last = i
	}

	var back RecurringRule
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID != rule.ID || back.Day != rule.Day || !back.Amount.Equal(rule.Amount) {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, rule)
	}
}
