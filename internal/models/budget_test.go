package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/clearspend/backend/internal/models"
	"github.com/clearspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{Name: "  July 2025\t"})

	assert.Equal(suite.T(), "July 2025", budget.Name)
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"No name",
			models.Budget{
				StartDate:   types.NewDate(2025, 7, 1),
				EndDate:     types.NewDate(2025, 7, 31),
				TotalAmount: decimal.NewFromInt(1000),
			},
			models.ErrBudgetNameRequired,
		},
		{
			"Name only whitespace",
			models.Budget{
				Name:        "   ",
				StartDate:   types.NewDate(2025, 7, 1),
				EndDate:     types.NewDate(2025, 7, 31),
				TotalAmount: decimal.NewFromInt(1000),
			},
			models.ErrBudgetNameRequired,
		},
		{
			"Name too long",
			models.Budget{
				Name:        strings.Repeat("a", 101),
				StartDate:   types.NewDate(2025, 7, 1),
				EndDate:     types.NewDate(2025, 7, 31),
				TotalAmount: decimal.NewFromInt(1000),
			},
			models.ErrBudgetNameRequired,
		},
		{
			"No start date",
			models.Budget{
				Name:        "July 2025",
				EndDate:     types.NewDate(2025, 7, 31),
				TotalAmount: decimal.NewFromInt(1000),
			},
			models.ErrBudgetStartDateRequired,
		},
		{
			"No end date",
			models.Budget{
				Name:        "July 2025",
				StartDate:   types.NewDate(2025, 7, 1),
				TotalAmount: decimal.NewFromInt(1000),
			},
			models.ErrBudgetEndDateRequired,
		},
		{
			"No total amount",
			models.Budget{
				Name:      "July 2025",
				StartDate: types.NewDate(2025, 7, 1),
				EndDate:   types.NewDate(2025, 7, 31),
			},
			models.ErrBudgetTotalAmountRequired,
		},
		{
			"Negative total amount",
			models.Budget{
				Name:        "July 2025",
				StartDate:   types.NewDate(2025, 7, 1),
				EndDate:     types.NewDate(2025, 7, 31),
				TotalAmount: decimal.NewFromInt(-100),
			},
			models.ErrBudgetTotalAmountRequired,
		},
		{
			"End date before start date",
			models.Budget{
				Name:        "July 2025",
				StartDate:   types.NewDate(2025, 7, 31),
				EndDate:     types.NewDate(2025, 7, 1),
				TotalAmount: decimal.NewFromInt(1000),
			},
			models.ErrBudgetPeriodInverted,
		},
		{
			"Single day period is allowed",
			models.Budget{
				Name:        "Payday",
				StartDate:   types.NewDate(2025, 7, 1),
				EndDate:     types.NewDate(2025, 7, 1),
				TotalAmount: decimal.NewFromInt(1000),
			},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.budget).Error
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetUpdateValidation() {
	budget := suite.createTestBudget(models.Budget{})

	// Moving the end date before the start date must fail
	err := models.DB.Model(&budget).Select("EndDate").Updates(models.Budget{EndDate: types.NewDate(2025, 6, 1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetPeriodInverted)

	// A valid update passes
	err = models.DB.Model(&budget).Select("Name").Updates(models.Budget{Name: "Renamed"}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetTotalSpent() {
	budget := suite.createTestBudget(models.Budget{TotalAmount: decimal.NewFromInt(1000)})
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID, Amount: decimal.NewFromInt(30)})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID, Amount: decimal.NewFromInt(20)})

	spent, err := budget.TotalSpent(models.DB)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), spent.Equal(decimal.NewFromInt(50)), "Total spent is wrong: %s", spent)
	assert.True(suite.T(), budget.RemainingAmount(spent).Equal(decimal.NewFromInt(950)), "Remaining amount is wrong")
	assert.True(suite.T(), budget.PercentageUsed(spent).Equal(decimal.NewFromInt(5)), "Percentage used is wrong: %s", budget.PercentageUsed(spent))
}

func (suite *TestSuiteStandard) TestBudgetTotalSpentNoTransactions() {
	budget := suite.createTestBudget(models.Budget{})

	spent, err := budget.TotalSpent(models.DB)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), spent.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetPercentageUsedRounding() {
	budget := models.Budget{TotalAmount: decimal.NewFromInt(300)}

	percentage := budget.PercentageUsed(decimal.NewFromInt(100))
	assert.Equal(suite.T(), "33.33", percentage.StringFixed(2))
}

func (suite *TestSuiteStandard) TestBudgetPercentageUsedZeroTotal() {
	budget := models.Budget{}

	percentage := budget.PercentageUsed(decimal.NewFromInt(100))
	assert.True(suite.T(), percentage.IsZero(), "Percentage for a budget without an amount must be zero")
}

func (suite *TestSuiteStandard) TestBudgetActive() {
	today := types.Today()

	active := models.Budget{StartDate: today.AddDate(0, 0, -1), EndDate: today.AddDate(0, 0, 1)}
	assert.True(suite.T(), active.Active())

	// Periods are inclusive on both ends
	firstDay := models.Budget{StartDate: today, EndDate: today.AddDate(0, 1, 0)}
	assert.True(suite.T(), firstDay.Active())

	lastDay := models.Budget{StartDate: today.AddDate(0, -1, 0), EndDate: today}
	assert.True(suite.T(), lastDay.Active())

	past := models.Budget{StartDate: today.AddDate(0, -2, 0), EndDate: today.AddDate(0, -1, 0)}
	assert.False(suite.T(), past.Active())
}

func (suite *TestSuiteStandard) TestCurrentBudgetActive() {
	today := types.Today()

	_ = suite.createTestBudget(models.Budget{
		Name:      "Past",
		StartDate: today.AddDate(0, -2, 0),
		EndDate:   today.AddDate(0, -1, 0),
	})

	active := suite.createTestBudget(models.Budget{
		Name:      "Active",
		StartDate: today.AddDate(0, 0, -5),
		EndDate:   today.AddDate(0, 0, 5),
	})

	current, err := models.CurrentBudget(models.DB)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), active.ID, current.ID)
}

func (suite *TestSuiteStandard) TestCurrentBudgetFallback() {
	today := types.Today()

	_ = suite.createTestBudget(models.Budget{
		Name:      "Older",
		StartDate: today.AddDate(0, -4, 0),
		EndDate:   today.AddDate(0, -3, 0),
	})

	latest := suite.createTestBudget(models.Budget{
		Name:      "Latest",
		StartDate: today.AddDate(0, -2, 0),
		EndDate:   today.AddDate(0, -1, 0),
	})

	current, err := models.CurrentBudget(models.DB)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), latest.ID, current.ID)
}

func (suite *TestSuiteStandard) TestCurrentBudgetNone() {
	_, err := models.CurrentBudget(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCascadeDelete() {
	budget := suite.createTestBudget(models.Budget{})
	other := suite.createTestBudget(models.Budget{Name: "Other"})
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID})
	_ = suite.createTestTransaction(models.Transaction{BudgetID: budget.ID, CategoryID: category.ID})
	kept := suite.createTestTransaction(models.Transaction{BudgetID: other.ID, CategoryID: category.ID})

	err := models.DB.Delete(&budget).Error
	require.NoError(suite.T(), err)

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Where("budget_id = ?", budget.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count, "Transactions of a deleted budget must be deleted with it")

	// Transactions of other budgets stay untouched
	var transaction models.Transaction
	assert.NoError(suite.T(), models.DB.First(&transaction, kept.ID).Error)
}

func (suite *TestSuiteStandard) TestBudgetTimestampsUTC() {
	budget := suite.createTestBudget(models.Budget{})

	var loaded models.Budget
	require.NoError(suite.T(), models.DB.First(&loaded, budget.ID).Error)

	assert.Equal(suite.T(), time.UTC, loaded.CreatedAt.Location())
	assert.Equal(suite.T(), time.UTC, loaded.UpdatedAt.Location())
}
