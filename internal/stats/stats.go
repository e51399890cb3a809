// Package stats derives statistics from a transaction list: time-window
// filtering, income/expense summaries, average daily spend and a
// rule-based insight message. Everything here is read-only over a
// snapshot; nothing mutates its input.
package stats

import (
	"fmt"
	"time"

	"portafoglio/internal/core"
)

const (
	Day   Window = "day"
	Week  Window = "week"
	Month Window = "month"
	Year  Window = "year"
)

// Window selects the time range used to filter transactions.
type Window string

// Windows lists the selectable windows in display order.
var Windows = []Window{Day, Week, Month, Year}

func (w Window) IsValid() bool {
	switch w {
	case Day, Week, Month, Year:
		return true
	default:
		return false
	}
}

// ParseWindow parses a window name, as used by the export CLI.
func ParseWindow(s string) (Window, error) {
	w := Window(s)
	if !w.IsValid() {
		return "", fmt.Errorf("unknown window %q (want day, week, month or year)", s)
	}
	return w, nil
}

// Summary holds the totals for a filtered transaction set. No rounding
// is applied here; formatting happens at presentation time.
type Summary struct {
	Income    float64
	Expenses  float64
	Net       float64 // Income - Expenses
	TotalFlow float64 // Income + Expenses
}

// FilterByWindow returns the transactions falling inside the window
// anchored at ref. Policy: day matches the same calendar date; week is
// the inclusive range [ref-7d, ref]; month matches calendar month and
// year; year matches the calendar year. Input order is preserved and
// the input slice is never modified.
func FilterByWindow(txs []core.Transaction, w Window, ref time.Time) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if inWindow(tx.Date, w, ref) {
			out = append(out, tx)
		}
	}
	return out
}

func inWindow(t time.Time, w Window, ref time.Time) bool {
	switch w {
	case Day:
		ty, tm, td := t.Date()
		ry, rm, rd := ref.Date()
		return ty == ry && tm == rm && td == rd
	case Week:
		weekAgo := ref.AddDate(0, 0, -7)
		return !t.Before(weekAgo) && !t.After(ref)
	case Month:
		return t.Year() == ref.Year() && t.Month() == ref.Month()
	case Year:
		return t.Year() == ref.Year()
	default:
		return true
	}
}

// Summarize sums a filtered transaction set into income and expense
// totals plus the derived net and total flow.
func Summarize(txs []core.Transaction) Summary {
	var sum Summary
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			sum.Income += tx.Amount
		case core.Expense:
			sum.Expenses += tx.Amount
		}
	}
	sum.Net = sum.Income - sum.Expenses
	sum.TotalFlow = sum.Income + sum.Expenses
	return sum
}

// AverageDailySpend divides the expense total by a fixed per-window
// divisor: day 1, week 7, month 30, year 365. The 30 for month is a
// deliberate approximation carried over from the product, not a
// calendar-accurate day count.
func AverageDailySpend(expenses float64, w Window) float64 {
	return expenses / float64(windowDays(w))
}

func windowDays(w Window) int {
	switch w {
	case Day:
		return 1
	case Week:
		return 7
	case Month:
		return 30
	case Year:
		return 365
	default:
		return 1
	}
}

// Insight returns exactly one message for a summary. The checks run in a
// fixed order: empty period, expenses exceeding income, expenses over
// 80% of income, expenses with no recorded income, otherwise a positive
// message.
func Insight(sum Summary) string {
	switch {
	case sum.TotalFlow == 0:
		return "No transactions found for this period. Add some expenses to see insights."
	case sum.Expenses > sum.Income:
		return "Spending exceeds income for this period. Consider reviewing your recent expenses."
	case sum.Expenses > sum.Income*0.8:
		return "You're utilizing over 80% of your income. Try to reduce discretionary spending."
	case sum.Income == 0 && sum.Expenses > 0:
		return "You have expenses but no recorded income for this period."
	default:
		return "Great job! Your finances are looking healthy for this period."
	}
}
