package store

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

type sample struct {
	typ      core.TransactionType
	amount   int64
	category core.Category
	desc     string
	day      int // day of month; values below 1 roll back into the previous month
}

// SampleTransactions returns the demo month relative to now: a salary on
// the 1st, a spread of expenses and a few entries in the last days.
func SampleTransactions(now time.Time, loc *time.Location) []core.NewTransaction {
	now = now.In(loc)
	today := now.Day()
	samples := []sample{
		{core.Income, 5000, core.Salary, "Monthly Salary", 1},
		{core.Expense, 45, core.Food, "Grocery shopping", 2},
		{core.Expense, 25, core.Transport, "Uber ride", 3},
		{core.Expense, 120, core.Shopping, "New headphones", 5},
		{core.Expense, 80, core.Entertainment, "Movie night", 7},
		{core.Income, 500, core.Freelance, "Side project", 10},
		{core.Expense, 200, core.Bills, "Electricity bill", 12},
		{core.Expense, 60, core.Health, "Pharmacy", 15},
		{core.Expense, 150, core.Education, "Online course", 18},
		{core.Expense, 35, core.Food, "Restaurant dinner", today - 2},
		{core.Expense, 15, core.Transport, "Bus pass", today - 1},
	}

	out := make([]core.NewTransaction, 0, len(samples)+1)
	for _, s := range samples {
		out = append(out, core.NewTransaction{
			Type:        s.typ,
			Amount:      decimal.NewFromInt(s.amount),
			Category:    s.category,
			Description: s.desc,
			Date:        time.Date(now.Year(), now.Month(), s.day, 0, 0, 0, 0, loc),
		})
	}
	out = append(out, core.NewTransaction{
		Type:        core.Expense,
		Amount:      decimal.NewFromInt(28),
		Category:    core.Food,
		Description: "Coffee & snacks",
		Date:        now,
	})
	return out
}
