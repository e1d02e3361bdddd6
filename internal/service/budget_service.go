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

// BudgetService handles budget record operations.
type BudgetService interface {
	Create(ctx context.Context, ownerID uuid.UUID, budgetMonth string, budgetAmount decimal.Decimal) (*model.Budget, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Budget, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, budgetMonth string, budgetAmount decimal.Decimal) (*model.Budget, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type budgetService struct {
	repo  repository.BudgetRepository
	cache *cache.Client
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repo repository.BudgetRepository, cache *cache.Client) BudgetService {
	return &budgetService{
		repo:  repo,
		cache: cache,
	}
}

func parseBudgetMonth(budgetMonth string) (time.Time, error) {
	month, err := time.Parse(model.BudgetMonthLayout, budgetMonth)
	if err != nil {
		return time.Time{}, errors.ErrInvalidMonth
	}
	return month, nil
}

// Create validates and persists a new budget stamped with the owner id.
func (s *budgetService) Create(ctx context.Context, ownerID uuid.UUID, budgetMonth string, budgetAmount decimal.Decimal) (*model.Budget, error) {
	if budgetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	month, err := parseBudgetMonth(budgetMonth)
	if err != nil {
		return nil, err
	}

	budget := &model.Budget{
		UserID:       ownerID,
		BudgetMonth:  budgetMonth,
		BudgetAmount: budgetAmount,
	}
	if err := s.repo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, month.Month())
	return budget, nil
}

// List returns the owner's budgets, newest month first.
func (s *budgetService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Budget, error) {
	budgets, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// Update replaces the mutable fields of an owned budget record.
func (s *budgetService) Update(ctx context.Context, ownerID, id uuid.UUID, budgetMonth string, budgetAmount decimal.Decimal) (*model.Budget, error) {
	if budgetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	month, err := parseBudgetMonth(budgetMonth)
	if err != nil {
		return nil, err
	}

	budget, err := s.repo.FindByIDAndUser(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find budget: %w", err)
	}

	previous, prevErr := parseBudgetMonth(budget.BudgetMonth)
	budget.BudgetMonth = budgetMonth
	budget.BudgetAmount = budgetAmount
	if err := s.repo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}

	if prevErr == nil {
		invalidateStats(ctx, s.cache, ownerID, previous.Month(), month.Month())
	} else {
		invalidateStats(ctx, s.cache, ownerID, month.Month())
	}
	return budget, nil
}

// Delete removes an owned budget record.
func (s *budgetService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	budget, err := s.repo.FindByIDAndUser(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecordNotFound
		}
		return fmt.Errorf("find budget: %w", err)
	}

	if err := s.repo.DeleteByIDAndUser(ctx, id, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecordNotFound
		}
		return fmt.Errorf("delete budget: %w", err)
	}

	if month, err := parseBudgetMonth(budget.BudgetMonth); err == nil {
		invalidateStats(ctx, s.cache, ownerID, month.Month())
	}
	return nil
}
