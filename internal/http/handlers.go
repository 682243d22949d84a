package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
)

// Handler serves the JSON API.
type Handler struct {
	api         TransactionAPI
	recentLimit int
}

func NewHandler(api TransactionAPI, recentLimit int) *Handler {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	return &Handler{api: api, recentLimit: recentLimit}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:code", h.GetCategory)

	api.GET("/transactions", h.ListTransactions)
	api.GET("/transactions/recent", h.ListRecent)
	api.POST("/transactions", h.CreateTransaction)
	api.DELETE("/transactions/:id", h.DeleteTransaction)

	api.GET("/summary", h.MonthSummary)
	api.GET("/calendar", h.Calendar)
	api.GET("/days/:date", h.Day)
	api.GET("/trend", h.Trend)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListCategories returns the category table, optionally filtered by ?type=.
func (h *Handler) ListCategories(c *gin.Context) {
	t := strings.TrimSpace(c.Query("type"))
	if t == "" {
		c.JSON(http.StatusOK, CategoriesResponse{Categories: core.Categories()})
		return
	}
	tt := core.TransactionType(t)
	if !tt.IsValid() {
		respondWithValidationError(c, []ValidationError{{
			Field:   "type",
			Message: "Value must be one of: income expense",
			Type:    "oneof",
		}})
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: core.CategoriesFor(tt)})
}

// GetCategory resolves a code; unknown codes resolve to "other".
func (h *Handler) GetCategory(c *gin.Context) {
	c.JSON(http.StatusOK, core.LookupCategory(core.Category(c.Param("code"))))
}

// ListTransactions returns all transactions, or those of ?date= or ?month=.
func (h *Handler) ListTransactions(c *gin.Context) {
	loc := h.api.Location()

	if v := strings.TrimSpace(c.Query("date")); v != "" {
		day, err := core.ParseDate(v, loc)
		if err != nil {
			respondWithValidationError(c, []ValidationError{{Field: "date", Message: "Date must use the YYYY-MM-DD format", Type: "datetime"}})
			return
		}
		c.JSON(http.StatusOK, TransactionsResponse{Transactions: h.api.ListByDate(day)})
		return
	}

	if _, ok := c.GetQuery("month"); ok {
		month := parseMonthQuery(c.Query("month"), h.api.Now(), loc)
		c.JSON(http.StatusOK, TransactionsResponse{Transactions: h.api.ListByMonth(month)})
		return
	}

	c.JSON(http.StatusOK, TransactionsResponse{Transactions: nonNil(h.api.All())})
}

func (h *Handler) ListRecent(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), h.recentLimit)
	c.JSON(http.StatusOK, TransactionsResponse{Transactions: nonNil(h.api.ListRecent(limit))})
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	n, details := req.ToNewTransaction(h.api.Location())
	if details != nil {
		respondWithValidationError(c, details)
		return
	}

	t, err := h.api.CreateTransaction(c.Request.Context(), n)
	if err != nil {
		applog.FromGin(c).WarnContext(c.Request.Context(), "Transaction rejected",
			applog.NewFields().WithError(err).WithErrorType(applog.ErrorTypeValidation).WithOperation(applog.OpCreate).ToSlice()...)
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// DeleteTransaction always answers 204; unknown ids are not an error.
func (h *Handler) DeleteTransaction(c *gin.Context) {
	h.api.DeleteTransaction(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) MonthSummary(c *gin.Context) {
	loc := h.api.Location()
	month := parseMonthQuery(c.Query("month"), h.api.Now(), loc)
	sum := h.api.MonthSummary(month)
	c.JSON(http.StatusOK, NewSummaryResponse(core.MonthKey(month, loc), sum))
}

func (h *Handler) Calendar(c *gin.Context) {
	loc := h.api.Location()
	month := parseMonthQuery(c.Query("month"), h.api.Now(), loc)
	c.JSON(http.StatusOK, CalendarResponse{
		Month: core.MonthKey(month, loc),
		Dates: h.api.DatesWithActivity(month),
	})
}

func (h *Handler) Day(c *gin.Context) {
	day, err := core.ParseDate(c.Param("date"), h.api.Location())
	if err != nil {
		respondWithValidationError(c, []ValidationError{{Field: "date", Message: "Date must use the YYYY-MM-DD format", Type: "datetime"}})
		return
	}
	c.JSON(http.StatusOK, h.api.DaySummary(day))
}

// Trend returns monthly totals ending at ?month=; ?months= sets the window.
func (h *Handler) Trend(c *gin.Context) {
	month := parseMonthQuery(c.Query("month"), h.api.Now(), h.api.Location())
	months, _ := strconv.Atoi(strings.TrimSpace(c.Query("months")))
	c.JSON(http.StatusOK, TrendResponse{Months: h.api.MonthlyTrend(month, months)})
}

func nonNil(txs []core.Transaction) []core.Transaction {
	if txs == nil {
		return []core.Transaction{}
	}
	return txs
}
