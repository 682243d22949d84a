package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary aggregates the transactions of a time window.
type Summary struct {
	TotalIncome        decimal.Decimal              `json:"totalIncome"`
	TotalExpense       decimal.Decimal              `json:"totalExpense"`
	Balance            decimal.Decimal              `json:"balance"`
	ExpensesByCategory map[Category]decimal.Decimal `json:"expensesByCategory"`
}

// CategoryShare is one slice of the expense breakdown.
type CategoryShare struct {
	Category Category        `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// DayActivity flags which transaction types occurred on a day.
type DayActivity struct {
	HasIncome  bool `json:"hasIncome"`
	HasExpense bool `json:"hasExpense"`
}

// MonthTotals holds the income and expense totals of one calendar month.
type MonthTotals struct {
	Name    string          `json:"name"` // short month name, e.g. "Jan"
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DaySummary is the detail of a single calendar day.
type DaySummary struct {
	Date         string          `json:"date"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Transactions []Transaction   `json:"transactions"`
}

// Summarize computes totals, balance and the per-category expense map
// over txs. Categories without expenses are absent from the map.
func Summarize(txs []Transaction) Summary {
	s := Summary{
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		ExpensesByCategory: make(map[Category]decimal.Decimal),
	}
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			s.ExpensesByCategory[t.Category] = s.ExpensesByCategory[t.Category].Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// SavingsRate returns balance as a percentage of income, or zero when
// there is no income.
func (s Summary) SavingsRate() decimal.Decimal {
	if !s.TotalIncome.IsPositive() {
		return decimal.Zero
	}
	return s.Balance.Div(s.TotalIncome).Mul(hundred)
}

// CategoryBreakdown lists expense categories by amount, largest first.
// Equal amounts keep category table order.
func (s Summary) CategoryBreakdown() []CategoryShare {
	out := make([]CategoryShare, 0, len(s.ExpensesByCategory))
	for cat, amount := range s.ExpensesByCategory {
		if !amount.IsPositive() {
			continue
		}
		pct := decimal.Zero
		if s.TotalExpense.IsPositive() {
			pct = amount.Div(s.TotalExpense).Mul(hundred)
		}
		out = append(out, CategoryShare{
			Category: cat,
			Label:    LookupCategory(cat).Label,
			Amount:   amount,
			Percent:  pct,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category.tableIndex() < out[j].Category.tableIndex()
	})
	return out
}

// ActivityByDate maps each day key of txs to the types seen on it.
func ActivityByDate(txs []Transaction, loc *time.Location) map[string]DayActivity {
	dates := make(map[string]DayActivity)
	for _, t := range txs {
		key := DateKey(t.Date, loc)
		a := dates[key]
		switch t.Type {
		case Income:
			a.HasIncome = true
		case Expense:
			a.HasExpense = true
		}
		dates[key] = a
	}
	return dates
}

// SummarizeDay builds the day detail for the transactions of day.
func SummarizeDay(day time.Time, txs []Transaction, loc *time.Location) DaySummary {
	s := Summarize(txs)
	if txs == nil {
		txs = []Transaction{}
	}
	return DaySummary{
		Date:         DateKey(day, loc),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Transactions: txs,
	}
}
