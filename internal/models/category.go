package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryType classifies the transactions of a category as money
// coming in or going out. The sign of a transaction amount does not
// matter for the classification, only the type of its category does.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents an income or expense classification for
// transactions.
type Category struct {
	DefaultModel
	Name         string
	CategoryType CategoryType
	Color        string // 6-digit hex color for display, e.g. #EF4444
}

var colorPattern = regexp.MustCompile("^#[0-9A-Fa-f]{6}$")

// BeforeSave trims whitespace from the name.
func (category *Category) BeforeSave(_ *gorm.DB) error {
	category.Name = strings.TrimSpace(category.Name)
	return nil
}

func (category *Category) BeforeCreate(tx *gorm.DB) error {
	_ = category.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return toSave.validate()
}

// BeforeUpdate validates the state the category would have after the
// update is applied.
func (category *Category) BeforeUpdate(tx *gorm.DB) error {
	current, ok := tx.Statement.Model.(*Category)
	if !ok {
		return nil
	}

	toSave, ok := tx.Statement.Dest.(Category)
	if !ok {
		return nil
	}

	effective := *current
	if tx.Statement.Changed("Name") {
		effective.Name = toSave.Name
	}
	if tx.Statement.Changed("CategoryType") {
		effective.CategoryType = toSave.CategoryType
	}
	if tx.Statement.Changed("Color") {
		effective.Color = toSave.Color
	}

	return effective.validate()
}

// BeforeDelete removes all transactions of the category. This has to
// happen before the category row is deleted since the foreign key
// constraints are enforced.
//
// gorm runs hooks inside the transaction of the delete itself, so
// either the category and all its transactions are deleted or nothing is.
func (category *Category) BeforeDelete(tx *gorm.DB) error {
	return tx.Where(&Transaction{CategoryID: category.ID}).Delete(&Transaction{}).Error
}

func (category Category) validate() error {
	name := strings.TrimSpace(category.Name)
	if name == "" || len(name) > 50 {
		return ErrCategoryNameRequired
	}

	if category.CategoryType != CategoryTypeIncome && category.CategoryType != CategoryTypeExpense {
		return ErrCategoryTypeInvalid
	}

	if !colorPattern.MatchString(category.Color) {
		return ErrCategoryColorInvalid
	}

	return nil
}

// IsIncome reports whether transactions of this category count as income.
func (category Category) IsIncome() bool {
	return category.CategoryType == CategoryTypeIncome
}

// IsExpense reports whether transactions of this category count as expenses.
func (category Category) IsExpense() bool {
	return category.CategoryType == CategoryTypeExpense
}

// TotalForBudget returns the sum of the category's transaction
// amounts restricted to one budget.
func (category Category) TotalForBudget(db *gorm.DB, budget Budget) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("transactions").
		Where(&Transaction{BudgetID: budget.ID, CategoryID: category.ID}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	// If there are no transactions, the sum is NULL
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
