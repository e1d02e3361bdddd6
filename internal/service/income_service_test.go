package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fintrack/internal/errors"
	"fintrack/internal/model"
)

func TestIncomeService_Create_AmountValidation(t *testing.T) {
	ownerID := uuid.New()
	date := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		expectedError error
	}{
		{
			name:          "zero amount rejected",
			amount:        decimal.Zero,
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:          "negative amount rejected",
			amount:        decimal.NewFromInt(-100),
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:   "one cent accepted",
			amount: decimal.NewFromFloat(0.01),
		},
		{
			name:   "normal amount accepted",
			amount: decimal.NewFromInt(50000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockIncomeRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Income")).Return(nil)
			}

			service := NewIncomeService(mockRepo, nil)
			income, err := service.Create(context.Background(), ownerID, "Salary", tt.amount, date)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, income)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, income)
				assert.Equal(t, ownerID, income.UserID)
				assert.True(t, tt.amount.Equal(income.Amount))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIncomeService_Create_StampsOwner(t *testing.T) {
	ownerID := uuid.New()
	mockRepo := new(MockIncomeRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.Income) bool {
		return in.UserID == ownerID
	})).Return(nil)

	service := NewIncomeService(mockRepo, nil)
	income, err := service.Create(context.Background(), ownerID, "Salary",
		decimal.NewFromInt(50000), time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, ownerID, income.UserID)
	mockRepo.AssertExpectations(t)
}

// A record id that exists under another owner must read as not found.
func TestIncomeService_Update_NotOwned(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()

	mockRepo := new(MockIncomeRepository)
	mockRepo.On("FindByIDAndUser", mock.Anything, recordID, ownerID).Return(nil, gorm.ErrRecordNotFound)

	service := NewIncomeService(mockRepo, nil)
	income, err := service.Update(context.Background(), ownerID, recordID, "Salary",
		decimal.NewFromInt(60000), time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, errors.ErrRecordNotFound, err)
	assert.Nil(t, income)
	mockRepo.AssertExpectations(t)
}

func TestIncomeService_Update(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()
	existing := &model.Income{
		ID:         recordID,
		UserID:     ownerID,
		Source:     "Salary",
		Amount:     decimal.NewFromInt(50000),
		IncomeDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
	}

	mockRepo := new(MockIncomeRepository)
	mockRepo.On("FindByIDAndUser", mock.Anything, recordID, ownerID).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Income")).Return(nil)

	service := NewIncomeService(mockRepo, nil)
	updated, err := service.Update(context.Background(), ownerID, recordID, "Bonus",
		decimal.NewFromInt(60000), time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, "Bonus", updated.Source)
	assert.True(t, decimal.NewFromInt(60000).Equal(updated.Amount))
	assert.Equal(t, ownerID, updated.UserID)
	mockRepo.AssertExpectations(t)
}

func TestIncomeService_Delete(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockIncomeRepository)
		expectedError error
	}{
		{
			name: "successful delete",
			setupMock: func(m *MockIncomeRepository) {
				m.On("FindByIDAndUser", mock.Anything, recordID, ownerID).Return(&model.Income{
					ID:         recordID,
					UserID:     ownerID,
					Amount:     decimal.NewFromInt(100),
					IncomeDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				}, nil)
				m.On("DeleteByIDAndUser", mock.Anything, recordID, ownerID).Return(nil)
			},
		},
		{
			name: "missing or not owned",
			setupMock: func(m *MockIncomeRepository) {
				m.On("FindByIDAndUser", mock.Anything, recordID, ownerID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockIncomeRepository)
			tt.setupMock(mockRepo)

			service := NewIncomeService(mockRepo, nil)
			err := service.Delete(context.Background(), ownerID, recordID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBudgetService_Create_Validation(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name          string
		month         string
		amount        decimal.Decimal
		expectedError error
	}{
		{
			name:          "zero amount rejected",
			month:         "2025-01",
			amount:        decimal.Zero,
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:          "bad month rejected",
			month:         "January 2025",
			amount:        decimal.NewFromInt(20000),
			expectedError: errors.ErrInvalidMonth,
		},
		{
			name:   "valid budget",
			month:  "2025-01",
			amount: decimal.NewFromInt(20000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBudgetRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Budget")).Return(nil)
			}

			service := NewBudgetService(mockRepo, nil)
			budget, err := service.Create(context.Background(), ownerID, tt.month, tt.amount)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, budget)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, ownerID, budget.UserID)
				assert.Equal(t, tt.month, budget.BudgetMonth)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
