package models

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultIncomeCategories returns the categories every fresh
// installation starts out with for income.
func DefaultIncomeCategories() []Category {
	return []Category{
		{Name: "Salary", CategoryType: CategoryTypeIncome, Color: "#10B981"},
		{Name: "Freelance", CategoryType: CategoryTypeIncome, Color: "#059669"},
		{Name: "Investment", CategoryType: CategoryTypeIncome, Color: "#047857"},
		{Name: "Other Income", CategoryType: CategoryTypeIncome, Color: "#065F46"},
	}
}

// DefaultExpenseCategories returns the categories every fresh
// installation starts out with for expenses.
func DefaultExpenseCategories() []Category {
	return []Category{
		{Name: "Food & Dining", CategoryType: CategoryTypeExpense, Color: "#EF4444"},
		{Name: "Transportation", CategoryType: CategoryTypeExpense, Color: "#F97316"},
		{Name: "Housing", CategoryType: CategoryTypeExpense, Color: "#EAB308"},
		{Name: "Utilities", CategoryType: CategoryTypeExpense, Color: "#8B5CF6"},
		{Name: "Healthcare", CategoryType: CategoryTypeExpense, Color: "#EC4899"},
		{Name: "Entertainment", CategoryType: CategoryTypeExpense, Color: "#06B6D4"},
		{Name: "Shopping", CategoryType: CategoryTypeExpense, Color: "#84CC16"},
		{Name: "Other Expenses", CategoryType: CategoryTypeExpense, Color: "#6B7280"},
	}
}

// EnsureDefaultCategories creates every default category that does
// not exist yet, matched by name. It is idempotent and safe to run on
// every startup. Categories the user renamed or recolored are left
// untouched.
func EnsureDefaultCategories(db *gorm.DB) error {
	for _, category := range append(DefaultIncomeCategories(), DefaultExpenseCategories()...) {
		err := db.Where(&Category{Name: category.Name}).FirstOrCreate(&category).Error
		if err != nil {
			return err
		}
	}

	log.Debug().Msg("default categories ensured")
	return nil
}
