package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionTypeIsValid(t *testing.T) {
	cases := []struct {
		in TransactionType
		ok bool
	}{
		{Income, true},
		{Expense, true},
		{"", false},
		{"transfer", false},
	}
	for _, tc := range cases {
		if got := tc.in.IsValid(); got != tc.ok {
			t.Fatalf("%q expected %v, got %v", tc.in, tc.ok, got)
		}
	}
}

func TestNewTransactionValidate(t *testing.T) {
	good := NewTransaction{
		Type:     Expense,
		Amount:   decimal.NewFromInt(45),
		Category: Food,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		tx   NewTransaction
		want error
	}{
		{NewTransaction{Type: "gift", Amount: decimal.NewFromInt(1), Category: Food}, ErrInvalidType},
		{NewTransaction{Type: Expense, Amount: decimal.Zero, Category: Food}, ErrInvalidAmount},
		{NewTransaction{Type: Expense, Amount: decimal.NewFromInt(-5), Category: Food}, ErrInvalidAmount},
		{NewTransaction{Type: Income, Amount: decimal.NewFromInt(1), Category: "  "}, ErrMissingCategory},
		{NewTransaction{Type: Income, Amount: decimal.NewFromInt(1), Category: "lottery"}, ErrUnknownCategory},
	}
	for i, tc := range bads {
		err := tc.tx.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("case %d expected invalid argument, got %v", i, err)
		}
	}
}

func TestNormalizedDescription(t *testing.T) {
	if got := (NewTransaction{Description: "   "}).NormalizedDescription(); got != DefaultDescription {
		t.Fatalf("blank description: got %q", got)
	}
	if got := (NewTransaction{Description: " Rent "}).NormalizedDescription(); got != "Rent" {
		t.Fatalf("trimmed description: got %q", got)
	}
}
