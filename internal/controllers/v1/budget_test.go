package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/clearspend/backend/internal/controllers/v1"
	"github.com/clearspend/backend/internal/models"
	"github.com/clearspend/backend/internal/types"
	"github.com/clearspend/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBudget(t, v1.BudgetEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BudgetListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestBudgetsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name   string
		id     string // path at the budgets endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/budgets", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsOptionsList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		Name:        "July 2025",
		StartDate:   types.NewDate(2025, 7, 1),
		EndDate:     types.NewDate(2025, 7, 31),
		TotalAmount: decimal.NewFromInt(1000),
	})

	require.NotNil(suite.T(), budget.Data)
	assert.Equal(suite.T(), "July 2025", budget.Data.Name)
	assert.True(suite.T(), budget.Data.TotalSpent.IsZero())
	assert.True(suite.T(), budget.Data.RemainingAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), budget.Data.PercentageUsed.IsZero())
	assert.NotEmpty(suite.T(), budget.Data.Links.Self)
	assert.NotEmpty(suite.T(), budget.Data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "name": 2" }`},
		{"No body", ""},
		{"Period inverted", []v1.BudgetEditable{{
			Name:        "Inverted",
			StartDate:   types.NewDate(2025, 7, 31),
			EndDate:     types.NewDate(2025, 7, 1),
			TotalAmount: decimal.NewFromInt(1000),
		}}},
		{"Zero total amount", []v1.BudgetEditable{{
			Name:      "No amount",
			StartDate: types.NewDate(2025, 7, 1),
			EndDate:   types.NewDate(2025, 7, 31),
		}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetList() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "August",
		StartDate: types.NewDate(2025, 8, 1),
		EndDate:   types.NewDate(2025, 8, 31),
	})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "July",
		StartDate: types.NewDate(2025, 7, 1),
		EndDate:   types.NewDate(2025, 7, 31),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	// Budgets are sorted by start date
	assert.Equal(suite.T(), "July", response.Data[0].Name)
	assert.Equal(suite.T(), "August", response.Data[1].Name)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestBudgetsGetListFilterName() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "July groceries"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Vacation"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?name=groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "July groceries", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestBudgetsGetListFilterActive() {
	today := types.Today()

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "Current",
		StartDate: today.AddDate(0, 0, -5),
		EndDate:   today.AddDate(0, 0, 5),
	})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "Past",
		StartDate: today.AddDate(0, -2, 0),
		EndDate:   today.AddDate(0, -1, 0),
	})

	tests := []struct {
		query string
		names []string
	}{
		{"active=true", []string{"Current"}},
		{"active=false", []string{"Past"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, len(tt.names))
			for i, name := range tt.names {
				assert.Equal(t, name, response.Data[i].Name)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetListFilterDates() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "July",
		StartDate: types.NewDate(2025, 7, 1),
		EndDate:   types.NewDate(2025, 7, 31),
	})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "August",
		StartDate: types.NewDate(2025, 8, 1),
		EndDate:   types.NewDate(2025, 8, 31),
	})

	tests := []struct {
		query  string
		status int
		names  []string
	}{
		{"fromDate=2025-08-01", http.StatusOK, []string{"August"}},
		{"untilDate=2025-07-31", http.StatusOK, []string{"July"}},
		{"fromDate=2025-07-15&untilDate=2025-08-15", http.StatusOK, []string{"July", "August"}},
		{"fromDate=yesterday", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, len(tt.names))
			for i, name := range tt.names {
				assert.Equal(t, name, response.Data[i].Name)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetListPagination() {
	for i := range 5 {
		_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: fmt.Sprintf("Budget %d", i)})
	}

	tests := []struct {
		name  string
		query string
		count int
		limit int
	}{
		{"Offset and limit", "?offset=2&limit=2", 2, 2},
		{"No parameters default to 50", "", 5, 50},
		{"Explicit limit 0", "?limit=0", 0, 0},
		{"Negative limit removes the limit", "?limit=-1", 5, -1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, int64(5), response.Pagination.Total)
			assert.Equal(t, tt.limit, response.Pagination.Limit)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing budget", budget.Data.ID.String(), http.StatusOK},
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetSingleComputedFields() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{TotalAmount: decimal.NewFromInt(1000)})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(50),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalSpent.Equal(decimal.NewFromInt(50)), "Total spent is wrong: %s", response.Data.TotalSpent)
	assert.True(suite.T(), response.Data.RemainingAmount.Equal(decimal.NewFromInt(950)))
	assert.Equal(suite.T(), "5", response.Data.PercentageUsed.String())
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/"+budget.Data.ID.String(), map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "After", response.Data.Name)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateInvalid() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Inverted period", map[string]any{"endDate": "2025-06-01"}, http.StatusBadRequest},
		{"Broken body", `{ "name": 2" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/budgets/"+budget.Data.ID.String(), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/"+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/"+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteCascades() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		BudgetID:   budget.Data.ID,
		CategoryID: category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/"+budget.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+transaction.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
