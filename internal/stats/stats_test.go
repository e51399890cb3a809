package stats

import (
	"strings"
	"testing"
	"time"

	"portafoglio/internal/core"
)

func tx(ty core.TransactionType, amount float64, date time.Time) core.Transaction {
	return core.Transaction{ID: "x", Type: ty, Amount: amount, Category: "Other", Date: date}
}

func TestFilterByWindow(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sameDay := tx(core.Expense, 1, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	threeDaysAgo := tx(core.Expense, 2, ref.AddDate(0, 0, -3))
	eightDaysAgo := tx(core.Expense, 3, ref.AddDate(0, 0, -8))
	sameMonth := tx(core.Income, 4, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	lastYear := tx(core.Expense, 5, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	lastMonth := tx(core.Expense, 6, time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	all := []core.Transaction{sameDay, threeDaysAgo, eightDaysAgo, sameMonth, lastYear, lastMonth}

	cases := []struct {
		w    Window
		want []float64
	}{
		{Day, []float64{1}},
		{Week, []float64{1, 2}}, // eightDaysAgo just misses the 7-day range
		{Month, []float64{1, 2, 3, 4}},
		{Year, []float64{1, 2, 3, 4, 6}},
	}
	for _, tc := range cases {
		t.Run(string(tc.w), func(t *testing.T) {
			got := FilterByWindow(all, tc.w, ref)
			if len(got) != len(tc.want) {
				t.Fatalf("filtered %d transactions, want %d (%v)", len(got), len(tc.want), got)
			}
			for i, amount := range tc.want {
				if got[i].Amount != amount {
					t.Fatalf("position %d amount = %v, want %v (order must be preserved)", i, got[i].Amount, amount)
				}
			}
		})
	}
}

func TestFilterByWindowMonthExcludesLastYear(t *testing.T) {
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	thisMonth := tx(core.Expense, 10, ref.AddDate(0, 0, -1))
	lastYear := tx(core.Expense, 5, ref.AddDate(-1, 0, 0))

	got := FilterByWindow([]core.Transaction{thisMonth, lastYear}, Month, ref)
	if len(got) != 1 || got[0].Amount != 10 {
		t.Fatalf("month filter = %v, want only the 10 expense", got)
	}
	if sum := Summarize(got); sum.Expenses != 10 {
		t.Fatalf("expense total = %v, want 10", sum.Expenses)
	}
}

func TestFilterByWindowWeekIsInclusive(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	boundary := tx(core.Expense, 1, ref.AddDate(0, 0, -7))
	atRef := tx(core.Expense, 2, ref)
	future := tx(core.Expense, 3, ref.Add(time.Hour))

	got := FilterByWindow([]core.Transaction{boundary, atRef, future}, Week, ref)
	if len(got) != 2 {
		t.Fatalf("week filter = %v, want the two boundary-inclusive entries", got)
	}
}

func TestSummarizeConsistency(t *testing.T) {
	now := time.Now()
	txs := []core.Transaction{
		tx(core.Income, 100, now),
		tx(core.Income, 25.5, now),
		tx(core.Expense, 40, now),
		tx(core.Expense, 10.5, now),
	}
	sum := Summarize(txs)
	if sum.Income != 125.5 || sum.Expenses != 50.5 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.Net != sum.Income-sum.Expenses {
		t.Fatalf("net = %v, want income-expenses", sum.Net)
	}
	if sum.TotalFlow != sum.Income+sum.Expenses {
		t.Fatalf("total flow = %v, want income+expenses", sum.TotalFlow)
	}
}

func TestAverageDailySpend(t *testing.T) {
	cases := []struct {
		w    Window
		want float64
	}{
		{Day, 30},
		{Week, 30.0 / 7},
		// Month divides by a flat 30 regardless of actual month length;
		// that approximation is intentional product behavior.
		{Month, 1},
		{Year, 30.0 / 365},
	}
	for _, tc := range cases {
		if got := AverageDailySpend(30, tc.w); got != tc.want {
			t.Errorf("AverageDailySpend(30, %s) = %v, want %v", tc.w, got, tc.want)
		}
	}
}

func TestInsightRuleOrder(t *testing.T) {
	cases := []struct {
		name     string
		sum      Summary
		fragment string
	}{
		{"empty period", Summary{}, "No transactions"},
		{"expenses exceed income", Summary{Income: 50, Expenses: 80, TotalFlow: 130}, "Spending exceeds income"},
		// 90 of 100 is within income but over the 80% threshold; the
		// 80% rule must win over the default positive message.
		{"over 80 percent", Summary{Income: 100, Expenses: 90, TotalFlow: 190}, "over 80%"},
		{"healthy", Summary{Income: 100, Expenses: 20, TotalFlow: 120}, "Great job"},
		{"income only", Summary{Income: 100, TotalFlow: 100}, "Great job"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Insight(tc.sum)
			if !strings.Contains(got, tc.fragment) {
				t.Fatalf("Insight(%+v) = %q, want message containing %q", tc.sum, got, tc.fragment)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	if w, err := ParseWindow("month"); err != nil || w != Month {
		t.Fatalf("ParseWindow(month) = %v, %v", w, err)
	}
	if _, err := ParseWindow("quarter"); err == nil {
		t.Fatal("ParseWindow(quarter) should fail")
	}
}
