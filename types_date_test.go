package cashflow

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2000, time.February, 29}, // century leap year
		{1900, time.February, 28}, // century non-leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tc := range testCases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestResolveDayInMonth(t *testing.T) {
	testCases := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  Date
	}{
		{"plain day", 2025, time.February, 14, MustParse("2025-02-14")},
		{"clamped in short february", 2025, time.February, 31, MustParse("2025-02-28")},
		{"clamped in leap february", 2024, time.February, 31, MustParse("2024-02-29")},
		{"clamped 31 in 30-day month", 2025, time.April, 31, MustParse("2025-04-30")},
		{"first of month", 2025, time.June, 1, MustParse("2025-06-01")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveDayInMonth(tc.year, tc.month, tc.day); got != tc.want {
				t.Errorf("ResolveDayInMonth(%d, %s, %d) = %s, want %s", tc.year, tc.month, tc.day, got, tc.want)
			}
		})
	}
}

func TestNextMonth(t *testing.T) {
	testCases := []struct {
		name string
		from Date
		want Date
	}{
		{"same day exists", MustParse("2025-01-15"), MustParse("2025-02-15")},
		{"falls back to day 1", MustParse("2025-01-31"), MustParse("2025-02-01")},
		{"30th into february", MustParse("2025-01-30"), MustParse("2025-02-01")},
		{"december rolls the year", MustParse("2025-12-14"), MustParse("2026-01-14")},
		{"leap february keeps 29", MustParse("2024-01-29"), MustParse("2024-02-29")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.nextMonth(); got != tc.want {
				t.Errorf("%s.nextMonth() = %s, want %s", tc.from, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-10-13", NewDate(2025, time.October, 13)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{"13.10.2025", NewDate(2025, time.October, 13)},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate accepted garbage input")
	}
}

func TestParseDateRelative(t *testing.T) {
	today := Today()
	testCases := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-02-28")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-02-28"` {
		t.Errorf("marshalled %s, want %q", b, `"2025-02-28"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip changed date: %s != %s", back, d)
	}
}
