package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/cache"
	"fintrack/internal/errors"
	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// ExpenseService handles expense record operations with the same explicit
// owner threading as IncomeService.
type ExpenseService interface {
	Create(ctx context.Context, ownerID uuid.UUID, category string, amount decimal.Decimal, expenseDate time.Time) (*model.Expense, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, category string, amount decimal.Decimal, expenseDate time.Time) (*model.Expense, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type expenseService struct {
	repo  repository.ExpenseRepository
	cache *cache.Client
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo repository.ExpenseRepository, cache *cache.Client) ExpenseService {
	return &expenseService{
		repo:  repo,
		cache: cache,
	}
}

// Create validates and persists a new expense record stamped with the owner id.
func (s *expenseService) Create(ctx context.Context, ownerID uuid.UUID, category string, amount decimal.Decimal, expenseDate time.Time) (*model.Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	expense := &model.Expense{
		UserID:      ownerID,
		Category:    category,
		Amount:      amount,
		ExpenseDate: expenseDate,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, expenseDate.Month())
	return expense, nil
}

// List returns the owner's expenses, newest expense date first.
func (s *expenseService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error) {
	expenses, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Update replaces the mutable fields of an owned expense record.
func (s *expenseService) Update(ctx context.Context, ownerID, id uuid.UUID, category string, amount decimal.Decimal, expenseDate time.Time) (*model.Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	expense, err := s.repo.FindByIDAndUser(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}

	previousMonth := expense.ExpenseDate.Month()
	expense.Category = category
	expense.Amount = amount
	expense.ExpenseDate = expenseDate
	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, previousMonth, expenseDate.Month())
	return expense, nil
}

// Delete removes an owned expense record.
func (s *expenseService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	expense, err := s.repo.FindByIDAndUser(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecordNotFound
		}
		return fmt.Errorf("find expense: %w", err)
	}

	if err := s.repo.DeleteByIDAndUser(ctx, id, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecordNotFound
		}
		return fmt.Errorf("delete expense: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, expense.ExpenseDate.Month())
	return nil
}
