package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// ValidationError is returned when a resource fails validation
// before being written to the database. Field names the attribute
// that failed so that clients can show errors next to the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Budget validation errors
var (
	ErrBudgetNameRequired        = ValidationError{Field: "name", Message: "must be set and no longer than 100 characters"}
	ErrBudgetStartDateRequired   = ValidationError{Field: "start_date", Message: "must be set"}
	ErrBudgetEndDateRequired     = ValidationError{Field: "end_date", Message: "must be set"}
	ErrBudgetTotalAmountRequired = ValidationError{Field: "total_amount", Message: "must be set and larger than zero"}
	ErrBudgetPeriodInverted      = ValidationError{Field: "end_date", Message: "must be after start date"}
)

// Category validation errors
var (
	ErrCategoryNameRequired = ValidationError{Field: "name", Message: "must be set and no longer than 50 characters"}
	ErrCategoryTypeInvalid  = ValidationError{Field: "category_type", Message: "must be either income or expense"}
	ErrCategoryColorInvalid = ValidationError{Field: "color", Message: "must be a valid hex color"}
)

// Transaction validation errors
var (
	ErrTransactionAmountZero          = ValidationError{Field: "amount", Message: "must be set and not zero"}
	ErrTransactionDescriptionRequired = ValidationError{Field: "description", Message: "must be set and no longer than 500 characters"}
	ErrTransactionDateRequired        = ValidationError{Field: "date", Message: "must be set"}
	ErrTransactionDateOutsideBudget   = ValidationError{Field: "date", Message: "must be within the budget period"}
)
