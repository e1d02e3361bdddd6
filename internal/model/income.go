package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income represents a single income entry owned by one user.
type Income struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Source     string          `json:"source" gorm:"size:255;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	IncomeDate time.Time       `json:"income_date" gorm:"not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
