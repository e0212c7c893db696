package models_test

import (
	"github.com/clearspend/backend/internal/models"
	"github.com/clearspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRecentTransactions() {
	budget := suite.createTestBudget(models.Budget{})
	category := suite.createTestCategory(models.Category{})

	for day := 1; day <= 12; day++ {
		_ = suite.createTestTransaction(models.Transaction{
			BudgetID:   budget.ID,
			CategoryID: category.ID,
			Date:       types.NewDate(2025, 7, day),
		})
	}

	transactions, err := budget.RecentTransactions(models.DB, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), transactions, 10)

	// Newest first, the two oldest transactions are cut off
	assert.True(suite.T(), transactions[0].Date.Equal(types.NewDate(2025, 7, 12)))
	assert.True(suite.T(), transactions[9].Date.Equal(types.NewDate(2025, 7, 3)))
}

func (suite *TestSuiteStandard) TestSpendingByCategory() {
	budget := suite.createTestBudget(models.Budget{})

	food := suite.createTestCategory(models.Category{Name: "Food & Dining", Color: "#EF4444"})
	transport := suite.createTestCategory(models.Category{Name: "Transportation", Color: "#F97316"})
	salary := suite.createTestCategory(models.Category{Name: "Salary", CategoryType: models.CategoryTypeIncome, Color: "#10B981"})

	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: food.ID, Amount: decimal.NewFromInt(30)})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: food.ID, Amount: decimal.NewFromInt(20)})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: transport.ID, Amount: decimal.NewFromInt(15)})

	// Income must not show up in the spending breakdown
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: salary.ID, Amount: decimal.NewFromInt(3000)})

	spending, err := budget.SpendingByCategory(models.DB)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), spending, 2)

	// Sorted by category name
	assert.Equal(suite.T(), "Food & Dining", spending[0].Name)
	assert.Equal(suite.T(), "#EF4444", spending[0].Color)
	assert.True(suite.T(), spending[0].Amount.Equal(decimal.NewFromInt(50)))

	assert.Equal(suite.T(), "Transportation", spending[1].Name)
	assert.True(suite.T(), spending[1].Amount.Equal(decimal.NewFromInt(15)))
}

func (suite *TestSuiteStandard) TestSpendingByCategoryEmpty() {
	budget := suite.createTestBudget(models.Budget{})

	spending, err := budget.SpendingByCategory(models.DB)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), spending)
}

func (suite *TestSuiteStandard) TestIncomeVsExpenses() {
	budget := suite.createTestBudget(models.Budget{})

	food := suite.createTestCategory(models.Category{Name: "Food & Dining"})
	salary := suite.createTestCategory(models.Category{Name: "Salary", CategoryType: models.CategoryTypeIncome, Color: "#10B981"})

	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: salary.ID, Amount: decimal.NewFromInt(3000)})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: food.ID, Amount: decimal.NewFromInt(250)})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: food.ID, Amount: decimal.NewFromInt(100)})

	result, err := budget.IncomeVsExpenses(models.DB)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), result.Income.Equal(decimal.NewFromInt(3000)), "Income is wrong: %s", result.Income)
	assert.True(suite.T(), result.Expenses.Equal(decimal.NewFromInt(350)), "Expenses are wrong: %s", result.Expenses)

	// Every transaction is counted in exactly one of the two sums
	var total decimal.NullDecimal
	require.NoError(suite.T(), models.DB.Table("transactions").Select("SUM(amount)").Row().Scan(&total))
	assert.True(suite.T(), result.Income.Add(result.Expenses).Equal(total.Decimal))
}

func (suite *TestSuiteStandard) TestIncomeVsExpensesEmpty() {
	budget := suite.createTestBudget(models.Budget{})

	result, err := budget.IncomeVsExpenses(models.DB)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), result.Income.IsZero())
	assert.True(suite.T(), result.Expenses.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetStats() {
	today := types.Today()

	budget := suite.createTestBudget(models.Budget{
		StartDate:   today.AddDate(0, 0, -9),
		EndDate:     today.AddDate(0, 0, 10),
		TotalAmount: decimal.NewFromInt(1000),
	})
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(50),
		Date:       today,
	})

	stats, err := budget.Stats(models.DB)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), stats.TotalBudget.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), stats.TotalSpent.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), stats.Remaining.Equal(decimal.NewFromInt(950)))
	assert.True(suite.T(), stats.PercentageUsed.Equal(decimal.NewFromInt(5)))
	assert.Equal(suite.T(), 10, stats.DaysRemaining)
	assert.Equal(suite.T(), 20, stats.TotalDays)
}

func (suite *TestSuiteStandard) TestBudgetStatsPastBudget() {
	today := types.Today()

	budget := suite.createTestBudget(models.Budget{
		StartDate: today.AddDate(0, 0, -20),
		EndDate:   today.AddDate(0, 0, -10),
	})

	stats, err := budget.Stats(models.DB)
	require.NoError(suite.T(), err)

	// A finished budget has negative days remaining
	assert.Equal(suite.T(), -10, stats.DaysRemaining)
	assert.Equal(suite.T(), 11, stats.TotalDays)
}
