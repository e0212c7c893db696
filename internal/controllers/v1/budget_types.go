package v1

import (
	"fmt"

	"github.com/clearspend/backend/internal/models"
	"github.com/clearspend/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name        string          `json:"name" example:"July 2025" default:""`       // Name of the budget
	StartDate   types.Date      `json:"startDate" example:"2025-07-01"`            // First day of the budget period
	EndDate     types.Date      `json:"endDate" example:"2025-07-31"`              // Last day of the budget period
	TotalAmount decimal.Decimal `json:"totalAmount" example:"3000.00" default:"0"` // The amount allocated for the whole period
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:        editable.Name,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
		TotalAmount: editable.TotalAmount,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this budget
}

// Budget is the API representation of a budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	// These fields are computed
	Active          bool            `json:"active" example:"true"`             // Does the budget period contain today?
	TotalSpent      decimal.Decimal `json:"totalSpent" example:"50"`           // Sum of all transaction amounts for the budget
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"950"`     // TotalAmount minus TotalSpent
	PercentageUsed  decimal.Decimal `json:"percentageUsed" example:"5"`        // Used part of the budget in percent, rounded to two decimal places
}

// newBudget returns the API representation of the resource
func newBudget(c *gin.Context, db *gorm.DB, model models.Budget) (Budget, error) {
	url := c.GetString(string(models.DBContextURL))

	spent, err := model.TotalSpent(db)
	if err != nil {
		return Budget{}, err
	}

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:        model.Name,
			StartDate:   model.StartDate,
			EndDate:     model.EndDate,
			TotalAmount: model.TotalAmount,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
		},
		Active:          model.Active(),
		TotalSpent:      spent,
		RemainingAmount: model.RemainingAmount(spent),
		PercentageUsed:  model.PercentageUsed(spent),
	}, nil
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name      string `form:"name" filterField:"false"`      // By name
	Active    bool   `form:"active" filterField:"false"`    // Only budgets whose period contains today (or only those where it does not)
	FromDate  string `form:"fromDate" filterField:"false"`  // Only budgets whose period ends on or after this date
	UntilDate string `form:"untilDate" filterField:"false"` // Only budgets whose period starts on or before this date
	Offset    uint   `form:"offset" filterField:"false"`    // The offset of the first budget returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`     // Maximum number of budgets to return. Defaults to 50.
}
