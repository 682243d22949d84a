package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

type ErrorResponse struct {
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

type TransactionsResponse struct {
	Transactions []core.Transaction `json:"transactions"`
}

type CategoriesResponse struct {
	Categories []core.CategoryInfo `json:"categories"`
}

// SummaryResponse is the dashboard payload for one month.
type SummaryResponse struct {
	Month              string                            `json:"month"`
	TotalIncome        decimal.Decimal                   `json:"totalIncome"`
	TotalExpense       decimal.Decimal                   `json:"totalExpense"`
	Balance            decimal.Decimal                   `json:"balance"`
	SavingsRate        decimal.Decimal                   `json:"savingsRate"`
	ExpensesByCategory map[core.Category]decimal.Decimal `json:"expensesByCategory"`
	Breakdown          []core.CategoryShare              `json:"breakdown"`
}

type CalendarResponse struct {
	Month string                      `json:"month"`
	Dates map[string]core.DayActivity `json:"dates"`
}

type TrendResponse struct {
	Months []core.MonthTotals `json:"months"`
}

// NewSummaryResponse derives the savings rate and category breakdown from sum.
// Percentages are rounded to two decimals.
func NewSummaryResponse(month string, sum core.Summary) SummaryResponse {
	breakdown := sum.CategoryBreakdown()
	for i := range breakdown {
		breakdown[i].Percent = breakdown[i].Percent.Round(2)
	}
	return SummaryResponse{
		Month:              month,
		TotalIncome:        sum.TotalIncome,
		TotalExpense:       sum.TotalExpense,
		Balance:            sum.Balance,
		SavingsRate:        sum.SavingsRate().Round(2),
		ExpensesByCategory: sum.ExpensesByCategory,
		Breakdown:          breakdown,
	}
}

func respondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Message: message})
}

func respondWithValidationError(c *gin.Context, details []ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Message: "Invalid request data",
		Details: details,
	})
}

// respondWithServiceError maps invalid arguments to 400 and anything else
// to 500.
func respondWithServiceError(c *gin.Context, err error) {
	if errors.Is(err, core.ErrInvalidArgument) {
		field := fieldForError(err)
		respondWithValidationError(c, []ValidationError{{
			Field:   field,
			Message: err.Error(),
			Type:    "invalid_argument",
		}})
		return
	}
	respondWithError(c, http.StatusInternalServerError, "Internal server error")
}
