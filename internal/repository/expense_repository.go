package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintrack/internal/model"
)

// ExpenseRepository defines expense persistence operations, owner-scoped the
// same way as IncomeRepository.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// ListByUser returns the user's expenses ordered by expense date descending.
func (r *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expense_date DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
