package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cashflow"
)

func mustPlan(t *testing.T) *cashflow.Plan {
	t.Helper()
	l := cashflow.NewLedger()
	if err := l.Append(
		cashflow.NewRecurringRule("Salary", cashflow.M(52000), 25),
		cashflow.NewRecurringRule("Rent", cashflow.M(-12000), 1),
		cashflow.NewOneTimeEntry("Repair", cashflow.M(-3200), cashflow.MustParse("2025-10-20")),
		cashflow.NewOneTimeEntry("Groceries", cashflow.M(-600), cashflow.MustParse("2025-10-10")),
	); err != nil {
		t.Fatal(err)
	}
	l.SetBalance(cashflow.MustParse("2025-10-06"), cashflow.M(22158))

	plan, err := l.Project(cashflow.MustParse("2025-10-13"), 30)
	if err != nil {
		t.Fatal(err)
	}
	return plan
}

func TestPlanMarkdown(t *testing.T) {
	plan := mustPlan(t)
	got := PlanMarkdown(plan, PlanOptions{})

	if !strings.Contains(got, "# Cashflow 2025-10-13 to 2025-11-12") {
		t.Errorf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "Snapshot on 2025-10-06") {
		t.Errorf("missing snapshot row:\n%s", got)
	}
	// One-time entries are marked with an asterisk, recurring ones are not.
	if !strings.Contains(got, "Repair *") {
		t.Errorf("one-time entry not marked:\n%s", got)
	}
	if strings.Contains(got, "Salary *") {
		t.Errorf("recurring occurrence wrongly marked:\n%s", got)
	}
	if !strings.Contains(got, "Lowest balance:") {
		t.Errorf("missing min balance footer:\n%s", got)
	}
	if strings.Contains(got, "Since Snapshot") {
		t.Errorf("past section rendered without ShowPast:\n%s", got)
	}
}

func TestPlanMarkdownThreshold(t *testing.T) {
	plan := mustPlan(t)
	got := PlanMarkdown(plan, PlanOptions{Threshold: cashflow.M(100000)})
	if !strings.Contains(got, "**Warning**") {
		t.Errorf("expected a threshold warning:\n%s", got)
	}
}

func TestPlanMarkdownShowPast(t *testing.T) {
	plan := mustPlan(t)
	got := PlanMarkdown(plan, PlanOptions{ShowPast: true})
	if !strings.Contains(got, "Since Snapshot") {
		t.Errorf("expected the past section:\n%s", got)
	}
}

func TestRecurringMarkdownSortsByDay(t *testing.T) {
	rules := []cashflow.RecurringRule{
		cashflow.NewRecurringRule("Salary", cashflow.M(52000), 25),
		cashflow.NewRecurringRule("Rent", cashflow.M(-12000), 1),
	}
	rules[0].Active = false

	got := RecurringMarkdown(rules)
	if strings.Index(got, "Rent") > strings.Index(got, "Salary") {
		t.Errorf("rules not sorted by day:\n%s", got)
	}
	if !strings.Contains(got, "inactive") {
		t.Errorf("inactive status missing:\n%s", got)
	}
	if !strings.Contains(got, rules[1].ID.Short()) {
		t.Errorf("short ID missing:\n%s", got)
	}
}

func TestOneTimeMarkdownEmpty(t *testing.T) {
	got := OneTimeMarkdown(nil)
	if !strings.Contains(got, "No one-time entries.") {
		t.Errorf("missing empty notice:\n%s", got)
	}
}

func TestBalanceMarkdown(t *testing.T) {
	l := cashflow.NewLedger()
	l.SetBalance(cashflow.MustParse("2025-09-01"), cashflow.M(18000))
	l.SetBalance(cashflow.MustParse("2025-10-13"), cashflow.M(22158))

	var snaps []cashflow.BalanceSnapshot
	for s := range l.Snapshots() {
		snaps = append(snaps, s)
	}

	got := BalanceMarkdown(snaps)
	if !strings.Contains(got, "observed 2025-10-13") {
		t.Errorf("missing latest snapshot date:\n%s", got)
	}
	if !strings.Contains(got, "## History") {
		t.Errorf("missing history section:\n%s", got)
	}
}
