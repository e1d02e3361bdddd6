package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintrack/internal/model"
)

// BudgetRepository defines budget persistence operations, owner-scoped.
type BudgetRepository interface {
	Create(ctx context.Context, budget *model.Budget) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Budget, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Budget, error)
	Update(ctx context.Context, budget *model.Budget) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository.
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *model.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

// ListByUser returns the user's budgets ordered by budget month descending.
// The YYYY-MM format sorts chronologically as text.
func (r *budgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("budget_month DESC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *budgetRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Budget, error) {
	var budget model.Budget
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *model.Budget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

func (r *budgetRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Budget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
