package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fintrack/internal/model"
)

// IncomeRepository defines income persistence operations. Every read and
// mutation is scoped to an owning user id; a record id alone never selects
// a row.
type IncomeRepository interface {
	Create(ctx context.Context, income *model.Income) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Income, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Income, error)
	Update(ctx context.Context, income *model.Income) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}

type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository.
func NewIncomeRepository(db *gorm.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Create(ctx context.Context, income *model.Income) error {
	return r.db.WithContext(ctx).Create(income).Error
}

// ListByUser returns the user's incomes ordered by income date descending.
func (r *incomeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Income, error) {
	var incomes []model.Income
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("income_date DESC").
		Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

// FindByIDAndUser matches on the conjunction of record id and owner id, so a
// record owned by someone else reads as not found.
func (r *incomeRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Income, error) {
	var income model.Income
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&income).Error; err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *incomeRepository) Update(ctx context.Context, income *model.Income) error {
	return r.db.WithContext(ctx).Save(income).Error
}

// DeleteByIDAndUser deletes with the same id+owner conjunction; deleting a
// missing or non-owned record reports gorm.ErrRecordNotFound.
func (r *incomeRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Income{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
