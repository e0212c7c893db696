package models

import (
	"strings"

	"github.com/clearspend/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense entry in a budget.
//
// Whether a transaction counts as income or expense is determined by
// its category, not by the sign of the amount.
type Transaction struct {
	DefaultModel
	BudgetID    uuid.UUID `gorm:"index:idx_transactions_budget_date"`
	Budget      Budget
	CategoryID  uuid.UUID `gorm:"index:idx_transactions_category_date"`
	Category    Category
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	Description string
	Date        types.Date `gorm:"index;index:idx_transactions_budget_date;index:idx_transactions_category_date"`
}

// BeforeSave trims whitespace from the description.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return toSave.validate(tx)
}

// BeforeUpdate validates the state the transaction would have after
// the update is applied. The budget period check always runs again as
// a changed budget or date can move the transaction out of its
// budget's period.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	current, ok := tx.Statement.Model.(*Transaction)
	if !ok {
		return nil
	}

	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		return nil
	}

	effective := *current
	if tx.Statement.Changed("BudgetID") {
		effective.BudgetID = toSave.BudgetID
	}
	if tx.Statement.Changed("CategoryID") {
		effective.CategoryID = toSave.CategoryID
	}
	if tx.Statement.Changed("Amount") {
		effective.Amount = toSave.Amount
	}
	if tx.Statement.Changed("Description") {
		effective.Description = toSave.Description
	}
	if tx.Statement.Changed("Date") {
		effective.Date = toSave.Date
	}

	return effective.validate(tx)
}

// validate verifies the transaction attributes and the references to
// the budget and the category. The date has to lie within the
// period of the referenced budget.
func (t Transaction) validate(tx *gorm.DB) error {
	if t.Amount.IsZero() {
		return ErrTransactionAmountZero
	}

	description := strings.TrimSpace(t.Description)
	if description == "" || len(description) > 500 {
		return ErrTransactionDescriptionRequired
	}

	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}

	var budget Budget
	err := tx.First(&budget, t.BudgetID).Error
	if err != nil {
		return err
	}

	err = tx.First(&Category{}, t.CategoryID).Error
	if err != nil {
		return err
	}

	if !t.Date.Between(budget.StartDate, budget.EndDate) {
		return ErrTransactionDateOutsideBudget
	}

	return nil
}
