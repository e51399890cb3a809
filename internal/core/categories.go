package core

// Category is an entry of the fixed category catalog. The icon is a
// single glyph used by the terminal UI.
type Category struct {
	Name string
	Icon string
}

var ExpenseCategories = []Category{
	{Name: "Food", Icon: "🍔"},
	{Name: "Transport", Icon: "🚗"},
	{Name: "Shopping", Icon: "🛍"},
	{Name: "Entertainment", Icon: "🎮"},
	{Name: "Health", Icon: "🏥"},
	{Name: "Bills", Icon: "📄"},
	{Name: "Education", Icon: "📚"},
	{Name: "Other", Icon: "📦"},
}

var IncomeCategories = []Category{
	{Name: "Salary", Icon: "💰"},
	{Name: "Freelance", Icon: "💻"},
	{Name: "Investments", Icon: "📈"},
	{Name: "Gift", Icon: "🎁"},
	{Name: "Other", Icon: "📦"},
}

// CategoriesFor returns the catalog for the given transaction type.
func CategoriesFor(t TransactionType) []Category {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// CategoryIcon returns the icon for a category name, falling back to the
// generic parcel glyph for names outside the catalog.
func CategoryIcon(name string) string {
	for _, c := range append(ExpenseCategories, IncomeCategories...) {
		if c.Name == name {
			return c.Icon
		}
	}
	return "📦"
}
