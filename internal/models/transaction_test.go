package models_test

import (
	"strings"
	"testing"

	"github.com/clearspend/backend/internal/models"
	"github.com/clearspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:    budget.ID,
		CategoryID:  category.ID,
		Description: "  Lunch at the food court ",
	})

	assert.Equal(suite.T(), "Lunch at the food court", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	budget := suite.createTestBudget(models.Budget{
		StartDate: types.NewDate(2025, 7, 1),
		EndDate:   types.NewDate(2025, 7, 31),
	})
	category := suite.createTestCategory(models.Category{})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"Zero amount",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Description: "Lunch",
				Date:        types.NewDate(2025, 7, 12),
			},
			models.ErrTransactionAmountZero,
		},
		{
			"No description",
			models.Transaction{
				BudgetID:   budget.ID,
				CategoryID: category.ID,
				Amount:     decimal.NewFromInt(10),
				Date:       types.NewDate(2025, 7, 12),
			},
			models.ErrTransactionDescriptionRequired,
		},
		{
			"Description too long",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Amount:      decimal.NewFromInt(10),
				Description: strings.Repeat("a", 501),
				Date:        types.NewDate(2025, 7, 12),
			},
			models.ErrTransactionDescriptionRequired,
		},
		{
			"No date",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Amount:      decimal.NewFromInt(10),
				Description: "Lunch",
			},
			models.ErrTransactionDateRequired,
		},
		{
			"Date before budget period",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Amount:      decimal.NewFromInt(10),
				Description: "Lunch",
				Date:        types.NewDate(2025, 6, 30),
			},
			models.ErrTransactionDateOutsideBudget,
		},
		{
			"Date after budget period",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Amount:      decimal.NewFromInt(10),
				Description: "Lunch",
				Date:        types.NewDate(2025, 8, 1),
			},
			models.ErrTransactionDateOutsideBudget,
		},
		{
			"First day of the period is allowed",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Amount:      decimal.NewFromInt(10),
				Description: "Lunch",
				Date:        types.NewDate(2025, 7, 1),
			},
			nil,
		},
		{
			"Last day of the period is allowed",
			models.Transaction{
				BudgetID:    budget.ID,
				CategoryID:  category.ID,
				Amount:      decimal.NewFromInt(10),
				Description: "Lunch",
				Date:        types.NewDate(2025, 7, 31),
			},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionReferencesChecked() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})

	// A transaction referencing a budget that does not exist must fail
	err := models.DB.Create(&models.Transaction{
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(10),
		Description: "Lunch",
		Date:        types.NewDate(2025, 7, 12),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// Same for the category
	err = models.DB.Create(&models.Transaction{
		BudgetID:    budget.ID,
		Amount:      decimal.NewFromInt(10),
		Description: "Lunch",
		Date:        types.NewDate(2025, 7, 12),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUpdateValidation() {
	budget := suite.createTestBudget(models.Budget{
		StartDate: types.NewDate(2025, 7, 1),
		EndDate:   types.NewDate(2025, 7, 31),
	})
	category := suite.createTestCategory(models.Category{})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Date:       types.NewDate(2025, 7, 12),
	})

	// Moving the transaction out of the budget period must fail
	err := models.DB.Model(&transaction).Select("Date").Updates(models.Transaction{Date: types.NewDate(2025, 8, 1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionDateOutsideBudget)

	// Moving it within the period passes
	err = models.DB.Model(&transaction).Select("Date").Updates(models.Transaction{Date: types.NewDate(2025, 7, 20)}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestTransactionUpdateBudgetChecked() {
	july := suite.createTestBudget(models.Budget{
		Name:      "July",
		StartDate: types.NewDate(2025, 7, 1),
		EndDate:   types.NewDate(2025, 7, 31),
	})
	august := suite.createTestBudget(models.Budget{
		Name:      "August",
		StartDate: types.NewDate(2025, 8, 1),
		EndDate:   types.NewDate(2025, 8, 31),
	})
	category := suite.createTestCategory(models.Category{})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:   july.ID,
		CategoryID: category.ID,
		Date:       types.NewDate(2025, 7, 12),
	})

	// The date is not changed, but the new budget's period does not contain it
	err := models.DB.Model(&transaction).Select("BudgetID").Updates(models.Transaction{BudgetID: august.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionDateOutsideBudget)
}

func (suite *TestSuiteStandard) TestTransactionAmountSign() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})

	// Negative amounts are allowed, only zero is not
	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(-25),
	})

	var loaded models.Transaction
	require.NoError(suite.T(), models.DB.First(&loaded, transaction.ID).Error)
	assert.True(suite.T(), loaded.Amount.Equal(decimal.NewFromInt(-25)))
}
