package v1

import (
	"github.com/clearspend/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategorySpending is the spending total for a single expense category
type CategorySpending struct {
	Name   string          `json:"name" example:"Food & Dining"` // Name of the category
	Color  string          `json:"color" example:"#EF4444"`      // Hex color of the category
	Amount decimal.Decimal `json:"amount" example:"180.50"`      // Sum of the transaction amounts for the category
}

// IncomeExpenses sums the transaction amounts of the budget by category type
type IncomeExpenses struct {
	Income   decimal.Decimal `json:"income" example:"3000"`   // Sum of all income transaction amounts
	Expenses decimal.Decimal `json:"expenses" example:"1250"` // Sum of all expense transaction amounts
}

// BudgetStats is the summary of the current budget
type BudgetStats struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"3000"`  // The amount allocated for the whole period
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"1250"`   // Sum of all transaction amounts
	Remaining      decimal.Decimal `json:"remaining" example:"1750"`    // TotalBudget minus TotalSpent
	PercentageUsed decimal.Decimal `json:"percentageUsed" example:"41.67"` // Used part of the budget in percent, rounded to two decimal places
	DaysRemaining  int             `json:"daysRemaining" example:"12"`  // Days from today until the end of the budget period. Negative when the period is over
	TotalDays      int             `json:"totalDays" example:"31"`      // Number of days in the budget period
}

// Dashboard is the API representation of the dashboard for the current budget.
//
// When no budget exists at all, Budget and MonthlyStats are null and
// the lists are empty.
type Dashboard struct {
	Budget             *Budget            `json:"budget"`             // The currently active budget
	RecentTransactions []Transaction      `json:"recentTransactions"` // The most recent transactions of the budget, newest first
	SpendingByCategory []CategorySpending `json:"spendingByCategory"` // Spending grouped by expense category, sorted by name
	IncomeVsExpenses   IncomeExpenses     `json:"incomeVsExpenses"`   // Sums of income and expense transactions
	MonthlyStats       *BudgetStats       `json:"monthlyStats"`       // Summary statistics for the budget period
}

func newCategorySpending(model models.CategorySpending) CategorySpending {
	return CategorySpending{
		Name:   model.Name,
		Color:  model.Color,
		Amount: model.Amount,
	}
}

func newBudgetStats(model models.BudgetStats) BudgetStats {
	return BudgetStats{
		TotalBudget:    model.TotalBudget,
		TotalSpent:     model.TotalSpent,
		Remaining:      model.Remaining,
		PercentageUsed: model.PercentageUsed,
		DaysRemaining:  model.DaysRemaining,
		TotalDays:      model.TotalDays,
	}
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                          // Data for the dashboard
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
