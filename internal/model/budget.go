package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetMonthLayout is the wire format for budget months, e.g. "2025-01".
const BudgetMonthLayout = "2006-01"

// Budget represents a monthly spending budget owned by one user.
// There is conceptually one budget per (user, month) but uniqueness is not
// enforced at the schema level.
type Budget struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	BudgetMonth  string          `json:"budgetMonth" gorm:"size:7;not null;index"`
	BudgetAmount decimal.Decimal `json:"budgetAmount" gorm:"type:decimal(20,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
