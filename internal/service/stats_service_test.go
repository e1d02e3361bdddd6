package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fintrack/internal/model"
)

func statsServiceWith(t *testing.T, incomes []model.Income, expenses []model.Expense, budgets []model.Budget) (StatsService, uuid.UUID) {
	t.Helper()
	ownerID := uuid.New()

	incomeRepo := new(MockIncomeRepository)
	incomeRepo.On("ListByUser", mock.Anything, ownerID).Return(incomes, nil)
	expenseRepo := new(MockExpenseRepository)
	expenseRepo.On("ListByUser", mock.Anything, ownerID).Return(expenses, nil)
	budgetRepo := new(MockBudgetRepository)
	budgetRepo.On("ListByUser", mock.Anything, ownerID).Return(budgets, nil)

	return NewStatsService(incomeRepo, expenseRepo, budgetRepo, nil), ownerID
}

// Salary 50000 on Jan 5 and rent 15000 on Jan 10 leave a January balance of
// 35000.
func TestStatsService_Summary_JanuaryScenario(t *testing.T) {
	incomes := []model.Income{
		{Source: "Salary", Amount: decimal.NewFromInt(50000), IncomeDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []model.Expense{
		{Category: "Rent", Amount: decimal.NewFromInt(15000), ExpenseDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
	}
	budgets := []model.Budget{
		{BudgetMonth: "2025-01", BudgetAmount: decimal.NewFromInt(20000)},
	}

	service, ownerID := statsServiceWith(t, incomes, expenses, budgets)
	summary, err := service.Summary(context.Background(), ownerID, time.January)

	assert.NoError(t, err)
	assert.Equal(t, "January", summary.Month)
	assert.Equal(t, "50000", summary.TotalIncome.String())
	assert.Equal(t, "15000", summary.TotalExpense.String())
	assert.Equal(t, "35000", summary.Balance.String())
	assert.Equal(t, "20000", summary.Budget.String())
	assert.Equal(t, "75", summary.BudgetStatus.Percent.String())
	assert.False(t, summary.BudgetStatus.Over)
}

// Spending 25000 against a 20000 budget shows 100% on the progress bar but
// the raw 125% ratio drives the over-budget warning.
func TestStatsService_Summary_OverBudget(t *testing.T) {
	expenses := []model.Expense{
		{Category: "Rent", Amount: decimal.NewFromInt(25000), ExpenseDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
	}
	budgets := []model.Budget{
		{BudgetMonth: "2025-01", BudgetAmount: decimal.NewFromInt(20000)},
	}

	service, ownerID := statsServiceWith(t, nil, expenses, budgets)
	summary, err := service.Summary(context.Background(), ownerID, time.January)

	assert.NoError(t, err)
	assert.Equal(t, "125", summary.BudgetStatus.Percent.String())
	assert.Equal(t, "100", summary.BudgetStatus.DisplayPercent.String())
	assert.True(t, summary.BudgetStatus.Over)
	assert.Equal(t, "-25000", summary.Balance.String())
}

// Total savings spans every month, not just the selected one.
func TestStatsService_Summary_TotalSavings(t *testing.T) {
	incomes := []model.Income{
		{Amount: decimal.NewFromInt(50000), IncomeDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(50000), IncomeDate: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []model.Expense{
		{Amount: decimal.NewFromInt(15000), ExpenseDate: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
	}

	service, ownerID := statsServiceWith(t, incomes, expenses, nil)
	summary, err := service.Summary(context.Background(), ownerID, time.January)

	assert.NoError(t, err)
	assert.Equal(t, "50000", summary.TotalIncome.String())
	assert.Equal(t, "0", summary.TotalExpense.String())
	assert.Equal(t, "85000", summary.TotalSavings.String())
}

func TestStatsService_MonthlyBreakdown(t *testing.T) {
	incomes := []model.Income{
		{Amount: decimal.NewFromInt(50000), IncomeDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(8000), IncomeDate: time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []model.Expense{
		{Amount: decimal.NewFromInt(15000), ExpenseDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
	}

	service, ownerID := statsServiceWith(t, incomes, expenses, nil)
	breakdown, err := service.MonthlyBreakdown(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, breakdown.Months, 12)

	january := breakdown.Months[0]
	assert.Equal(t, "January", january.Month)
	assert.Equal(t, "50000", january.Income.String())
	assert.Equal(t, "15000", january.Expense.String())
	assert.Equal(t, "35000", january.Savings.String())

	june := breakdown.Months[5]
	assert.Equal(t, "8000", june.Income.String())
	assert.Equal(t, "0", june.Expense.String())

	december := breakdown.Months[11]
	assert.Equal(t, "December", december.Month)
	assert.Equal(t, "0", december.Income.String())
}
