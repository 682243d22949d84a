// Package http provides the gin JSON API over the transaction service.
//
// This file contains request binding, validation and query parsing.
package http

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names instead of Go struct field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateTransactionRequest is the body of POST /api/transactions.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Amount      json.RawMessage `json:"amount" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"max=200"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidateRequest returns one entry per failed validation rule, or nil.
func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "max":
		return "Value is too long"
	case "datetime":
		return "Date must use the YYYY-MM-DD format"
	default:
		return "Invalid value"
	}
}

// parseAmountJSON accepts a JSON number or a JSON string holding a decimal.
func parseAmountJSON(raw json.RawMessage) (decimal.Decimal, error) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, core.ErrInvalidAmount
		}
		text = s
	}
	return core.ParseAmount(text)
}

// ToNewTransaction validates the request and converts it into the domain
// input. Dates are interpreted in loc.
func (r CreateTransactionRequest) ToNewTransaction(loc *time.Location) (core.NewTransaction, []ValidationError) {
	if errs := ValidateRequest(r); errs != nil {
		return core.NewTransaction{}, errs
	}

	amount, err := parseAmountJSON(r.Amount)
	if err != nil {
		return core.NewTransaction{}, []ValidationError{{
			Field:   "amount",
			Message: "Amount must be a positive decimal number",
			Type:    "amount",
		}}
	}

	n := core.NewTransaction{
		Type:        core.TransactionType(r.Type),
		Amount:      amount,
		Category:    core.Category(strings.TrimSpace(r.Category)),
		Description: r.Description,
	}
	if r.Date != "" {
		d, err := core.ParseDate(r.Date, loc)
		if err != nil {
			return core.NewTransaction{}, []ValidationError{{Field: "date", Message: "Invalid date", Type: "datetime"}}
		}
		n.Date = d
	}
	return n, nil
}

// fieldForError maps domain validation errors back to request fields.
func fieldForError(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "amount"
	case errors.Is(err, core.ErrInvalidType):
		return "type"
	case errors.Is(err, core.ErrMissingCategory), errors.Is(err, core.ErrUnknownCategory):
		return "category"
	default:
		return ""
	}
}

// parseMonthQuery parses a YYYY-MM value, falling back to the month of now
// when it is missing or malformed.
func parseMonthQuery(value string, now time.Time, loc *time.Location) time.Time {
	if v := strings.TrimSpace(value); v != "" {
		if m, err := core.ParseMonth(v, loc); err == nil {
			return m
		}
	}
	return core.StartOfMonth(now, loc)
}

// parseLimit parses a positive page size capped at maxRecentLimit.
func parseLimit(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	if n > maxRecentLimit {
		return maxRecentLimit
	}
	return n
}
