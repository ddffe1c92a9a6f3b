package cashflow

import (
	"encoding/json"
	"testing"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in   string
		want Money
	}{
		{"22158", M(22158)},
		{"22 158", M(22158)},
		{"-478", M(-478)},
		{"- 478", M(-478)},
		{"10.50", M(10.50)},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.in)
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseMoney(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseMoney("x123"); err == nil {
		t.Error("ParseMoney accepted garbage input")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(22158), M(-478)
	if got := a.Add(b); !got.Equal(M(21680)) {
		t.Errorf("Add = %s, want 21680", got)
	}
	if got := a.Sub(b); !got.Equal(M(22636)) {
		t.Errorf("Sub = %s, want 22636", got)
	}
	if !b.IsNegative() || b.IsPositive() {
		t.Error("sign predicates broken for -478")
	}
	if !b.Neg().Equal(M(478)) {
		t.Error("Neg broken for -478")
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(M(-478))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "-478" {
		t.Errorf("marshalled %s, want bare -478", b)
	}
	var back Money
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(M(-478)) {
		t.Errorf("round trip changed amount: %s", back)
	}
}
