package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack/internal/cache"
	"fintrack/internal/model"
	"fintrack/internal/report"
	"fintrack/internal/repository"
)

const statsCacheTTL = 30 * time.Second

// MonthlySummary is the dashboard view for a single calendar month. The
// filter deliberately matches month only, so records from the same month of
// different years merge into one bucket.
type MonthlySummary struct {
	Month        string             `json:"month"`
	TotalIncome  decimal.Decimal    `json:"total_income"`
	TotalExpense decimal.Decimal    `json:"total_expense"`
	Budget       decimal.Decimal    `json:"budget"`
	Balance      decimal.Decimal    `json:"balance"`
	TotalSavings decimal.Decimal    `json:"total_savings"`
	BudgetStatus report.Utilization `json:"budget_status"`
}

// MonthBucket is one month of the yearly breakdown.
type MonthBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// YearlyBreakdown carries twelve month buckets in calendar order.
type YearlyBreakdown struct {
	Months []MonthBucket `json:"months"`
}

// StatsService computes dashboard aggregates over one user's records. The
// three collections are fetched independently with no snapshot isolation;
// a concurrent write from another session of the same user can produce a
// transiently inconsistent aggregate, which is accepted.
type StatsService interface {
	Summary(ctx context.Context, ownerID uuid.UUID, month time.Month) (*MonthlySummary, error)
	MonthlyBreakdown(ctx context.Context, ownerID uuid.UUID) (*YearlyBreakdown, error)
}

type statsService struct {
	incomeRepo  repository.IncomeRepository
	expenseRepo repository.ExpenseRepository
	budgetRepo  repository.BudgetRepository
	cache       *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	incomeRepo repository.IncomeRepository,
	expenseRepo repository.ExpenseRepository,
	budgetRepo repository.BudgetRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		cache:       cache,
	}
}

func summaryCacheKey(ownerID uuid.UUID, month time.Month) string {
	return fmt.Sprintf("stats:summary:%s:%d", ownerID, int(month))
}

func monthlyCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("stats:monthly:%s", ownerID)
}

// invalidateStats drops the cached aggregates touched by a record mutation:
// the yearly breakdown and the summary of each affected month.
func invalidateStats(ctx context.Context, c *cache.Client, ownerID uuid.UUID, months ...time.Month) {
	_ = c.Delete(ctx, monthlyCacheKey(ownerID))
	for _, m := range months {
		_ = c.Delete(ctx, summaryCacheKey(ownerID, m))
	}
}

func (s *statsService) fetchAll(ctx context.Context, ownerID uuid.UUID) ([]model.Income, []model.Expense, []model.Budget, error) {
	incomes, err := s.incomeRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list incomes: %w", err)
	}
	expenses, err := s.expenseRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list expenses: %w", err)
	}
	budgets, err := s.budgetRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list budgets: %w", err)
	}
	return incomes, expenses, budgets, nil
}

// Summary computes the month's totals, balance, all-time savings, and budget
// utilization, with a short-lived cache-aside read.
func (s *statsService) Summary(ctx context.Context, ownerID uuid.UUID, month time.Month) (*MonthlySummary, error) {
	key := summaryCacheKey(ownerID, month)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached MonthlySummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	incomes, expenses, budgets, err := s.fetchAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	incomeEntries := report.IncomeEntries(incomes)
	expenseEntries := report.ExpenseEntries(expenses)

	monthIncome := report.Sum(report.FilterByMonth(incomeEntries, month))
	monthExpense := report.Sum(report.FilterByMonth(expenseEntries, month))
	monthBudget := report.Sum(report.FilterByMonth(report.BudgetEntries(budgets), month))

	summary := &MonthlySummary{
		Month:        report.MonthLabels[int(month)-1],
		TotalIncome:  monthIncome,
		TotalExpense: monthExpense,
		Budget:       monthBudget,
		Balance:      report.Balance(monthIncome, monthExpense),
		TotalSavings: report.Balance(report.Sum(incomeEntries), report.Sum(expenseEntries)),
		BudgetStatus: report.ComputeUtilization(monthExpense, monthBudget),
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, key, payload, statsCacheTTL)
	}
	return summary, nil
}

// MonthlyBreakdown buckets all records by calendar month for the yearly
// charts, one entry per month January through December.
func (s *statsService) MonthlyBreakdown(ctx context.Context, ownerID uuid.UUID) (*YearlyBreakdown, error) {
	key := monthlyCacheKey(ownerID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached YearlyBreakdown
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	incomes, expenses, _, err := s.fetchAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	incomeBuckets := report.MonthlyBreakdown(report.IncomeEntries(incomes))
	expenseBuckets := report.MonthlyBreakdown(report.ExpenseEntries(expenses))

	breakdown := &YearlyBreakdown{Months: make([]MonthBucket, 0, 12)}
	for i := 0; i < 12; i++ {
		breakdown.Months = append(breakdown.Months, MonthBucket{
			Month:   report.MonthLabels[i],
			Income:  incomeBuckets[i].Total,
			Expense: expenseBuckets[i].Total,
			Savings: report.Balance(incomeBuckets[i].Total, expenseBuckets[i].Total),
		})
	}

	if payload, err := json.Marshal(breakdown); err == nil {
		_ = s.cache.Set(ctx, key, payload, statsCacheTTL)
	}
	return breakdown, nil
}
