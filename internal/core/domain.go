package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultDescription replaces blank descriptions on creation.
const DefaultDescription = "No description"

// MaxDescriptionLength bounds free-text descriptions accepted from clients.
const MaxDescriptionLength = 200

type (
	TransactionType string

	// Transaction is a single recorded income or expense event.
	// Values are never modified after creation.
	Transaction struct {
		ID          string          `json:"id"`
		Type        TransactionType `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    Category        `json:"category"`
		Description string          `json:"description"`
		Date        time.Time       `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	// NewTransaction carries the caller-supplied fields of a transaction
	// to be created. A zero Date means "now".
	NewTransaction struct {
		Type        TransactionType
		Amount      decimal.Decimal
		Category    Category
		Description string
		Date        time.Time
	}
)

var (
	// ErrInvalidArgument is wrapped by every validation error so callers
	// can classify them with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidAmount   = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	ErrInvalidType     = fmt.Errorf("%w: type must be income or expense", ErrInvalidArgument)
	ErrMissingCategory = fmt.Errorf("%w: category is required", ErrInvalidArgument)
	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrInvalidArgument)
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// Validate checks the fields the store enforces on creation.
func (n NewTransaction) Validate() error {
	if !n.Type.IsValid() {
		return fmt.Errorf("%w (got %q)", ErrInvalidType, n.Type)
	}
	if !n.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(string(n.Category)) == "" {
		return ErrMissingCategory
	}
	if !n.Category.IsKnown() {
		return fmt.Errorf("%w %q", ErrUnknownCategory, n.Category)
	}
	return nil
}

// NormalizedDescription returns the trimmed description, or the
// default placeholder when it is blank.
func (n NewTransaction) NormalizedDescription() string {
	desc := strings.TrimSpace(n.Description)
	if desc == "" {
		return DefaultDescription
	}
	return desc
}

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}
