package models

import (
	"errors"
	"strings"

	"github.com/clearspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a time-bounded spending plan.
//
// A budget is the highest level of organization in Clearspend, all
// transactions reference one.
type Budget struct {
	DefaultModel
	Name        string
	StartDate   types.Date      `gorm:"index:idx_budgets_period"`
	EndDate     types.Date      `gorm:"index:idx_budgets_period"`
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
}

// BeforeSave trims whitespace from the name.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return toSave.validate()
}

// BeforeUpdate validates the state the budget would have after the
// update is applied.
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	current, ok := tx.Statement.Model.(*Budget)
	if !ok {
		return nil
	}

	toSave, ok := tx.Statement.Dest.(Budget)
	if !ok {
		return nil
	}

	effective := *current
	if tx.Statement.Changed("Name") {
		effective.Name = toSave.Name
	}
	if tx.Statement.Changed("StartDate") {
		effective.StartDate = toSave.StartDate
	}
	if tx.Statement.Changed("EndDate") {
		effective.EndDate = toSave.EndDate
	}
	if tx.Statement.Changed("TotalAmount") {
		effective.TotalAmount = toSave.TotalAmount
	}

	return effective.validate()
}

// BeforeDelete removes all transactions of the budget. This has to
// happen before the budget row is deleted since the foreign key
// constraints are enforced.
//
// gorm runs hooks inside the transaction of the delete itself, so
// either the budget and all its transactions are deleted or nothing is.
func (b *Budget) BeforeDelete(tx *gorm.DB) error {
	return tx.Where(&Transaction{BudgetID: b.ID}).Delete(&Transaction{}).Error
}

func (b Budget) validate() error {
	name := strings.TrimSpace(b.Name)
	if name == "" || len(name) > 100 {
		return ErrBudgetNameRequired
	}

	if b.StartDate.IsZero() {
		return ErrBudgetStartDateRequired
	}

	if b.EndDate.IsZero() {
		return ErrBudgetEndDateRequired
	}

	if !b.TotalAmount.IsPositive() {
		return ErrBudgetTotalAmountRequired
	}

	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetPeriodInverted
	}

	return nil
}

// Active reports whether today falls into the budget period.
func (b Budget) Active() bool {
	return types.Today().Between(b.StartDate, b.EndDate)
}

// TotalSpent returns the sum of all transaction amounts for the budget.
func (b Budget) TotalSpent(db *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Table("transactions").
		Where(&Transaction{BudgetID: b.ID}).
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

// RemainingAmount returns the amount of the budget that has not been
// spent yet. It is negative when the budget is overspent.
func (b Budget) RemainingAmount(spent decimal.Decimal) decimal.Decimal {
	return b.TotalAmount.Sub(spent)
}

// PercentageUsed returns how much of the budget has been used, in
// percent with two decimal places. A budget without an amount is
// never used up.
func (b Budget) PercentageUsed(spent decimal.Decimal) decimal.Decimal {
	if b.TotalAmount.IsZero() {
		return decimal.Zero
	}

	return spent.Div(b.TotalAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// CurrentBudget returns the budget to display by default: the active
// budget whose period contains today. If no budget is active, the
// budget with the latest start date is used.
//
// The error is ErrResourceNotFound when no budget exists at all.
func CurrentBudget(db *gorm.DB) (Budget, error) {
	today := types.Today()

	var budget Budget
	err := db.
		Where("date(start_date) <= date(?) AND date(end_date) >= date(?)", today, today).
		Order("start_date ASC").
		First(&budget).Error
	if err == nil {
		return budget, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Budget{}, err
	}

	err = db.Order("start_date DESC").First(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}
