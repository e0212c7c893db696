package models

import (
	"github.com/clearspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategorySpending is the spending total for a single expense category.
type CategorySpending struct {
	Name   string
	Color  string
	Amount decimal.Decimal
}

// IncomeExpenses partitions the transaction amounts of a budget by
// the type of their category.
type IncomeExpenses struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// BudgetStats is the summary of a budget for the dashboard.
type BudgetStats struct {
	TotalBudget    decimal.Decimal
	TotalSpent     decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed decimal.Decimal
	DaysRemaining  int
	TotalDays      int
}

// RecentTransactions returns the most recent transactions of the
// budget by date, newest first.
func (b Budget) RecentTransactions(db *gorm.DB, limit int) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(&Transaction{BudgetID: b.ID}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// SpendingByCategory returns the summed transaction amounts of the
// budget for every expense category that has transactions, sorted by
// category name.
func (b Budget) SpendingByCategory(db *gorm.DB) ([]CategorySpending, error) {
	spending := make([]CategorySpending, 0)

	err := db.
		Table("transactions").
		Select("categories.name AS name, categories.color AS color, SUM(transactions.amount) AS amount").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.budget_id = ?", b.ID).
		Where("categories.category_type = ?", CategoryTypeExpense).
		Group("categories.name").
		Group("categories.color").
		Order("categories.name ASC").
		Scan(&spending).Error
	if err != nil {
		return nil, err
	}

	return spending, nil
}

// IncomeVsExpenses returns the transaction amounts of the budget
// summed up by the type of the transaction's category.
func (b Budget) IncomeVsExpenses(db *gorm.DB) (IncomeExpenses, error) {
	sumForType := func(categoryType CategoryType) (decimal.Decimal, error) {
		var sum decimal.NullDecimal

		err := db.
			Table("transactions").
			Select("SUM(transactions.amount)").
			Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("transactions.budget_id = ?", b.ID).
			Where("categories.category_type = ?", categoryType).
			Row().
			Scan(&sum)
		if err != nil {
			return decimal.Zero, err
		}

		if !sum.Valid {
			return decimal.Zero, nil
		}

		return sum.Decimal, nil
	}

	income, err := sumForType(CategoryTypeIncome)
	if err != nil {
		return IncomeExpenses{}, err
	}

	expenses, err := sumForType(CategoryTypeExpense)
	if err != nil {
		return IncomeExpenses{}, err
	}

	return IncomeExpenses{Income: income, Expenses: expenses}, nil
}

// Stats computes the dashboard summary for the budget.
//
// DaysRemaining is negative when the budget period is over.
func (b Budget) Stats(db *gorm.DB) (BudgetStats, error) {
	spent, err := b.TotalSpent(db)
	if err != nil {
		return BudgetStats{}, err
	}

	today := types.Today()

	return BudgetStats{
		TotalBudget:    b.TotalAmount,
		TotalSpent:     spent,
		Remaining:      b.RemainingAmount(spent),
		PercentageUsed: b.PercentageUsed(spent),
		DaysRemaining:  today.DaysUntil(b.EndDate),
		TotalDays:      b.StartDate.DaysUntil(b.EndDate) + 1,
	}, nil
}
