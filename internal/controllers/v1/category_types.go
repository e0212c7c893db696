package v1

import (
	"fmt"

	"github.com/clearspend/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name         string              `json:"name" example:"Groceries" default:""`       // Name of the category
	CategoryType models.CategoryType `json:"type" example:"expense" default:"expense"`  // Whether transactions in this category are income or expenses
	Color        string              `json:"color" example:"#EF4444" default:"#6B7280"` // Hex color used to display the category
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:         editable.Name,
		CategoryType: editable.CategoryType,
		Color:        editable.Color,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`

	// Spent is only set when the category is requested for a specific budget
	Spent *decimal.Decimal `json:"spent,omitempty" example:"180.50"` // Sum of all transaction amounts for this category in the requested budget
}

// newCategory returns the API representation of the resource. When budget is
// not nil, the total spent for the category within that budget is included.
func newCategory(c *gin.Context, db *gorm.DB, model models.Category, budget *models.Budget) (Category, error) {
	url := c.GetString(string(models.DBContextURL))

	category := Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:         model.Name,
			CategoryType: model.CategoryType,
			Color:        model.Color,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}

	if budget != nil {
		spent, err := model.TotalForBudget(db, *budget)
		if err != nil {
			return Category{}, err
		}
		category.Spent = &spent
	}

	return category, nil
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Type   string `form:"type" filterField:"false"`   // By type, either 'income' or 'expense'
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}
