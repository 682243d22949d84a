package core

// Category is a fixed classification code for a transaction.
type Category string

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Shopping      Category = "shopping"
	Entertainment Category = "entertainment"
	Bills         Category = "bills"
	Health        Category = "health"
	Education     Category = "education"
	Salary        Category = "salary"
	Freelance     Category = "freelance"
	Investment    Category = "investment"
	Other         Category = "other"
)

// AppliesToBoth marks a category usable for incomes and expenses.
const AppliesToBoth = "both"

// CategoryInfo describes how a category is presented and which
// transaction types it applies to.
type CategoryInfo struct {
	ID      Category `json:"id"`
	Label   string   `json:"label"`
	Icon    string   `json:"icon"`
	Color   string   `json:"color"`
	Applies string   `json:"type"` // "income", "expense" or "both"
}

// "other" must stay last: it is the lookup fallback.
var categories = []CategoryInfo{
	{ID: Food, Label: "Food & Dining", Icon: "UtensilsCrossed", Color: "category-food", Applies: string(Expense)},
	{ID: Transport, Label: "Transport", Icon: "Car", Color: "category-transport", Applies: string(Expense)},
	{ID: Shopping, Label: "Shopping", Icon: "ShoppingBag", Color: "category-shopping", Applies: string(Expense)},
	{ID: Entertainment, Label: "Entertainment", Icon: "Gamepad2", Color: "category-entertainment", Applies: string(Expense)},
	{ID: Bills, Label: "Bills & Utilities", Icon: "Receipt", Color: "category-bills", Applies: string(Expense)},
	{ID: Health, Label: "Health", Icon: "Heart", Color: "category-health", Applies: string(Expense)},
	{ID: Education, Label: "Education", Icon: "GraduationCap", Color: "category-education", Applies: string(Expense)},
	{ID: Salary, Label: "Salary", Icon: "Wallet", Color: "success", Applies: string(Income)},
	{ID: Freelance, Label: "Freelance", Icon: "Laptop", Color: "primary", Applies: string(Income)},
	{ID: Investment, Label: "Investment", Icon: "TrendingUp", Color: "success", Applies: string(Income)},
	{ID: Other, Label: "Other", Icon: "MoreHorizontal", Color: "category-other", Applies: AppliesToBoth},
}

// Categories returns a copy of the full category table in display order.
func Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), categories...)
}

// CategoriesFor returns the categories usable for the given type,
// including the ones that apply to both.
func CategoriesFor(t TransactionType) []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categories))
	for _, c := range categories {
		if c.Applies == string(t) || c.Applies == AppliesToBoth {
			out = append(out, c)
		}
	}
	return out
}

// LookupCategory returns the info for code. Unknown codes resolve to
// the "other" entry.
func LookupCategory(code Category) CategoryInfo {
	for _, c := range categories {
		if c.ID == code {
			return c
		}
	}
	return categories[len(categories)-1]
}

// IsKnown reports whether c has an entry in the category table.
func (c Category) IsKnown() bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// tableIndex returns the position of c in the table, or len(table) if
// unknown. Used for deterministic ordering.
func (c Category) tableIndex() int {
	for i, info := range categories {
		if info.ID == c {
			return i
		}
	}
	return len(categories)
}
