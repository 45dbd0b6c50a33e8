package model

// CategoryKind separates income from expense categories.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Category represents a row in the categories table.
type Category struct {
	ID   int64
	Name string
	Kind CategoryKind
}
