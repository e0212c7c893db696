package models_test

import (
	"strings"
	"testing"

	"github.com/clearspend/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{Name: " Groceries  "})

	assert.Equal(suite.T(), "Groceries", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryValidation() {
	tests := []struct {
		name     string
		category models.Category
		err      error
	}{
		{
			"No name",
			models.Category{CategoryType: models.CategoryTypeExpense, Color: "#EF4444"},
			models.ErrCategoryNameRequired,
		},
		{
			"Name too long",
			models.Category{Name: strings.Repeat("a", 51), CategoryType: models.CategoryTypeExpense, Color: "#EF4444"},
			models.ErrCategoryNameRequired,
		},
		{
			"No type",
			models.Category{Name: "Groceries", Color: "#EF4444"},
			models.ErrCategoryTypeInvalid,
		},
		{
			"Unknown type",
			models.Category{Name: "Groceries", CategoryType: "savings", Color: "#EF4444"},
			models.ErrCategoryTypeInvalid,
		},
		{
			"Color is not a hex color",
			models.Category{Name: "Groceries", CategoryType: models.CategoryTypeExpense, Color: "blue"},
			models.ErrCategoryColorInvalid,
		},
		{
			"Color without leading hash",
			models.Category{Name: "Groceries", CategoryType: models.CategoryTypeExpense, Color: "EF4444"},
			models.ErrCategoryColorInvalid,
		},
		{
			"Color too short",
			models.Category{Name: "Groceries", CategoryType: models.CategoryTypeExpense, Color: "#EF4"},
			models.ErrCategoryColorInvalid,
		},
		{
			"Mixed case color is allowed",
			models.Category{Name: "Groceries", CategoryType: models.CategoryTypeExpense, Color: "#1a2B3c"},
			nil,
		},
		{
			"Income category",
			models.Category{Name: "Salary", CategoryType: models.CategoryTypeIncome, Color: "#10B981"},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.category).Error
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryUpdateValidation() {
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Model(&category).Select("Color").Updates(models.Category{Color: "red"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryColorInvalid)

	err = models.DB.Model(&category).Select("Color").Updates(models.Category{Color: "#1A2B3C"}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryTypeChecks() {
	income := models.Category{CategoryType: models.CategoryTypeIncome}
	expense := models.Category{CategoryType: models.CategoryTypeExpense}

	assert.True(suite.T(), income.IsIncome())
	assert.False(suite.T(), income.IsExpense())
	assert.True(suite.T(), expense.IsExpense())
	assert.False(suite.T(), expense.IsIncome())
}

func (suite *TestSuiteStandard) TestCategoryTotalForBudget() {
	budget := suite.createTestBudget(models.Budget{})
	other := suite.createTestBudget(models.Budget{Name: "Other"})
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(12.5)})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(7.5)})

	// Transactions in other budgets do not count
	_ = suite.createTestTransaction(models.Transaction{BudgetID: other.ID, CategoryID: category.ID, Amount: decimal.NewFromInt(100)})

	total, err := category.TotalForBudget(models.DB, budget)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), total.Equal(decimal.NewFromInt(20)), "Total for budget is wrong: %s", total)
}

func (suite *TestSuiteStandard) TestCategoryCascadeDelete() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})
	kept := suite.createTestCategory(models.Category{Name: "Other"})

	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID})
	keptTransaction := suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: kept.ID})

	err := models.DB.Delete(&category).Error
	require.NoError(suite.T(), err)

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Where("category_id = ?", category.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "Transactions of a deleted category must be deleted with it")

	var transaction models.Transaction
	assert.NoError(suite.T(), models.DB.First(&transaction, keptTransaction.ID).Error)
}
