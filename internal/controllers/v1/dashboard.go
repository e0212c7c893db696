package v1

import (
	"errors"
	"net/http"

	"github.com/clearspend/backend/internal/httputil"
	"github.com/clearspend/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// recentTransactionCount is the number of transactions shown on the dashboard
const recentTransactionCount = 10

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the dashboard for the current budget. The current budget is the budget whose period contains today. When no budget is active, the one with the most recent start date is used instead.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	budget, err := models.CurrentBudget(models.DB)
	if err != nil {
		// Without any budget the dashboard is empty, not an error
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusOK, DashboardResponse{
				Data: &Dashboard{
					RecentTransactions: []Transaction{},
					SpendingByCategory: []CategorySpending{},
				},
			})
			return
		}

		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	apiBudget, err := newBudget(c, models.DB, budget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	recent, err := budget.RecentTransactions(models.DB, recentTransactionCount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	recentTransactions := make([]Transaction, 0, len(recent))
	for _, transaction := range recent {
		apiResource, err := newTransaction(c, models.DB, transaction)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DashboardResponse{
				Error: &s,
			})
			return
		}
		recentTransactions = append(recentTransactions, apiResource)
	}

	spending, err := budget.SpendingByCategory(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	spendingByCategory := make([]CategorySpending, 0, len(spending))
	for _, categorySpending := range spending {
		spendingByCategory = append(spendingByCategory, newCategorySpending(categorySpending))
	}

	incomeExpenses, err := budget.IncomeVsExpenses(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	stats, err := budget.Stats(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}
	monthlyStats := newBudgetStats(stats)

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &Dashboard{
			Budget:             &apiBudget,
			RecentTransactions: recentTransactions,
			SpendingByCategory: spendingByCategory,
			IncomeVsExpenses: IncomeExpenses{
				Income:   incomeExpenses.Income,
				Expenses: incomeExpenses.Expenses,
			},
			MonthlyStats: &monthlyStats,
		},
	})
}
