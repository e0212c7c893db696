package v1

import (
	"fmt"

	"github.com/clearspend/backend/internal/models"
	"github.com/clearspend/backend/internal/types"
	cs_uuid "github.com/clearspend/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	BudgetID   uuid.UUID `json:"budgetId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`   // ID of the budget
	CategoryID uuid.UUID `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category

	// The amount is always positive. Whether the transaction counts as
	// income or expense follows from its category.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01" maximum:"99999999.99" multipleOf:"0.01"` // The amount for the transaction

	Description string     `json:"description" example:"Lunch at the food court" default:""` // What the transaction was for
	Date        types.Date `json:"date" example:"2025-07-12"`                                // Day the transaction occurred. Must be within the budget period
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		BudgetID:    editable.BudgetID,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Budget   string `json:"budget" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f"`    // The budget the transaction belongs to
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category of the transaction
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`

	// These fields are computed from the category
	Type         models.CategoryType `json:"type" example:"expense"`        // Whether the transaction is income or an expense
	SignedAmount string              `json:"signedAmount" example:"-14.03"` // The amount with a sign according to the category type
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, db *gorm.DB, model models.Transaction) (Transaction, error) {
	url := c.GetString(string(models.DBContextURL))

	category := model.Category
	if category.ID == uuid.Nil {
		err := db.First(&category, model.CategoryID).Error
		if err != nil {
			return Transaction{}, err
		}
	}

	sign := "+"
	if category.IsExpense() {
		sign = "-"
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			BudgetID:    model.BudgetID,
			CategoryID:  model.CategoryID,
			Amount:      model.Amount,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Budget:   fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
		Type:         category.CategoryType,
		SignedAmount: sign + model.Amount.Abs().StringFixed(2),
	}, nil
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

// TransactionOrder is the sort order for transaction lists
// swagger:enum TransactionOrder
type TransactionOrder string

const (
	OrderDate   TransactionOrder = "date"   // Oldest transactions first
	OrderRecent TransactionOrder = "recent" // Newest transactions first
)

type TransactionQueryFilter struct {
	BudgetID    cs_uuid.UUID     `form:"budget"`                          // Filter by budget ID
	CategoryID  cs_uuid.UUID     `form:"category"`                        // Filter by category ID
	Date        string           `form:"date" filterField:"false"`        // Date of the transaction
	FromDate    string           `form:"fromDate" filterField:"false"`    // Transactions at and after this date
	UntilDate   string           `form:"untilDate" filterField:"false"`   // Transactions before and at this date
	Month       string           `form:"month" filterField:"false"`       // Transactions in this month, format YYYY-MM
	Description string           `form:"description" filterField:"false"` // Filter by description
	Order       TransactionOrder `form:"order" filterField:"false"`       // Sort order, 'date' or 'recent'. Defaults to 'recent'
	Offset      uint             `form:"offset" filterField:"false"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int              `form:"limit" filterField:"false"`       // Maximum number of transactions to return. Defaults to 50.
}

// model returns the database resource for the query filter fields
// that filter directly on database columns
func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		BudgetID:   f.BudgetID.UUID,
		CategoryID: f.CategoryID.UUID,
	}
}
