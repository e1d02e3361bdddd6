// Package report holds the pure aggregation functions shared by every view:
// sums, month filters, twelve-month breakdowns, balances, and budget
// utilization. Nothing here performs I/O.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/model"
)

// MonthLabels are the calendar month names in order, used as breakdown keys.
var MonthLabels = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Entry is the amount-and-date view of a record. Income, expense, and budget
// rows are reduced to this shape so they share one set of aggregation
// functions.
type Entry struct {
	Amount decimal.Decimal
	Date   time.Time
}

// IncomeEntries adapts income records for aggregation.
func IncomeEntries(incomes []model.Income) []Entry {
	entries := make([]Entry, 0, len(incomes))
	for _, in := range incomes {
		entries = append(entries, Entry{Amount: in.Amount, Date: in.IncomeDate})
	}
	return entries
}

// ExpenseEntries adapts expense records for aggregation.
func ExpenseEntries(expenses []model.Expense) []Entry {
	entries := make([]Entry, 0, len(expenses))
	for _, ex := range expenses {
		entries = append(entries, Entry{Amount: ex.Amount, Date: ex.ExpenseDate})
	}
	return entries
}

// BudgetEntries adapts budget records for aggregation. The budget month is
// anchored to the first day of the month; rows whose month does not parse
// are skipped.
func BudgetEntries(budgets []model.Budget) []Entry {
	entries := make([]Entry, 0, len(budgets))
	for _, b := range budgets {
		date, err := time.Parse(model.BudgetMonthLayout, b.BudgetMonth)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Amount: b.BudgetAmount, Date: date})
	}
	return entries
}

// Sum totals the amounts of the given entries. An empty slice sums to zero,
// and the result does not depend on entry order.
func Sum(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// FilterByMonth keeps entries whose date falls in the given calendar month
// of any year. Cross-year merging (January 2024 with January 2025) is the
// observed behavior of the system and is kept intentionally.
func FilterByMonth(entries []Entry, month time.Month) []Entry {
	var filtered []Entry
	for _, e := range entries {
		if e.Date.Month() == month {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MonthTotal is one bucket of a twelve-month breakdown.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyBreakdown buckets entries by calendar month regardless of year,
// producing one total per month in January..December order. Months with no
// entries total zero.
func MonthlyBreakdown(entries []Entry) [12]MonthTotal {
	var breakdown [12]MonthTotal
	for i := range breakdown {
		breakdown[i] = MonthTotal{Month: MonthLabels[i], Total: decimal.Zero}
	}
	for _, e := range entries {
		idx := int(e.Date.Month()) - 1
		breakdown[idx].Total = breakdown[idx].Total.Add(e.Amount)
	}
	return breakdown
}

// Utilization describes spending against a budget. Percent is the raw
// expense/budget ratio and drives the Over flag; DisplayPercent is clamped
// to 100 for progress-bar rendering.
type Utilization struct {
	Percent        decimal.Decimal `json:"percent"`
	DisplayPercent decimal.Decimal `json:"display_percent"`
	Over           bool            `json:"over_budget"`
	Remaining      decimal.Decimal `json:"remaining"`
}

var hundred = decimal.NewFromInt(100)

// ComputeUtilization reports budget utilization. A zero or missing budget
// yields zero percent and never flags over-budget. Over is strict: spending
// exactly the budget is still under.
func ComputeUtilization(totalExpense, budget decimal.Decimal) Utilization {
	if budget.LessThanOrEqual(decimal.Zero) {
		return Utilization{
			Percent:        decimal.Zero,
			DisplayPercent: decimal.Zero,
			Remaining:      decimal.Zero,
		}
	}

	percent := totalExpense.Div(budget).Mul(hundred)
	display := percent
	if display.GreaterThan(hundred) {
		display = hundred
	}
	return Utilization{
		Percent:        percent,
		DisplayPercent: display,
		Over:           totalExpense.GreaterThan(budget),
		Remaining:      budget.Sub(totalExpense),
	}
}

// Balance returns income minus expense; the result may be negative.
func Balance(totalIncome, totalExpense decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalExpense)
}
