package core

import "testing"

func TestLookupCategory(t *testing.T) {
	if got := LookupCategory(Food); got.Label != "Food & Dining" || got.Icon != "UtensilsCrossed" {
		t.Fatalf("unexpected food info: %+v", got)
	}
	if got := LookupCategory(Salary); got.Applies != string(Income) {
		t.Fatalf("salary should apply to income, got %q", got.Applies)
	}

	for _, code := range []Category{"", "lottery", "FOOD"} {
		got := LookupCategory(code)
		if got.ID != Other {
			t.Fatalf("%q expected fallback to other, got %q", code, got.ID)
		}
	}
}

func TestCategoriesTable(t *testing.T) {
	all := Categories()
	if len(all) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(all))
	}
	if all[len(all)-1].ID != Other {
		t.Fatalf("other must be last, got %q", all[len(all)-1].ID)
	}

	// Mutating the copy must not touch the table.
	all[0].Label = "changed"
	if LookupCategory(Food).Label != "Food & Dining" {
		t.Fatalf("Categories returned shared storage")
	}
}

func TestCategoriesFor(t *testing.T) {
	income := CategoriesFor(Income)
	want := []Category{Salary, Freelance, Investment, Other}
	if len(income) != len(want) {
		t.Fatalf("income categories: got %v", income)
	}
	for i, c := range want {
		if income[i].ID != c {
			t.Fatalf("income[%d] expected %q, got %q", i, c, income[i].ID)
		}
	}

	expense := CategoriesFor(Expense)
	if len(expense) != 8 || expense[len(expense)-1].ID != Other {
		t.Fatalf("expense categories: got %v", expense)
	}
}
