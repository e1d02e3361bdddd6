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

// IncomeService handles income record operations. The owner id is always an
// explicit argument resolved by the access gate, never taken from the
// request body.
type IncomeService interface {
	Create(ctx context.Context, ownerID uuid.UUID, source string, amount decimal.Decimal, incomeDate time.Time) (*model.Income, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Income, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, source string, amount decimal.Decimal, incomeDate time.Time) (*model.Income, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type incomeService struct {
	repo  repository.IncomeRepository
	cache *cache.Client
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo repository.IncomeRepository, cache *cache.Client) IncomeService {
	return &incomeService{
		repo:  repo,
		cache: cache,
	}
}

// Create validates and persists a new income record stamped with the owner id.
func (s *incomeService) Create(ctx context.Context, ownerID uuid.UUID, source string, amount decimal.Decimal, incomeDate time.Time) (*model.Income, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	income := &model.Income{
		UserID:     ownerID,
		Source:     source,
		Amount:     amount,
		IncomeDate: incomeDate,
	}
	if err := s.repo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("create income: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, incomeDate.Month())
	return income, nil
}

// List returns the owner's incomes, newest income date first.
func (s *incomeService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Income, error) {
	incomes, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	return incomes, nil
}

// Update replaces the mutable fields of an owned income record. A record
// that exists under another owner behaves exactly like a missing one.
func (s *incomeService) Update(ctx context.Context, ownerID, id uuid.UUID, source string, amount decimal.Decimal, incomeDate time.Time) (*model.Income, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	income, err := s.repo.FindByIDAndUser(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find income: %w", err)
	}

	previousMonth := income.IncomeDate.Month()
	income.Source = source
	income.Amount = amount
	income.IncomeDate = incomeDate
	if err := s.repo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("update income: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, previousMonth, incomeDate.Month())
	return income, nil
}

// Delete removes an owned income record.
func (s *incomeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	income, err := s.repo.FindByIDAndUser(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecordNotFound
		}
		return fmt.Errorf("find income: %w", err)
	}

	if err := s.repo.DeleteByIDAndUser(ctx, id, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecordNotFound
		}
		return fmt.Errorf("delete income: %w", err)
	}

	invalidateStats(ctx, s.cache, ownerID, income.IncomeDate.Month())
	return nil
}
