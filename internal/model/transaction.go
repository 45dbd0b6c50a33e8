package model

import "github.com/shopspring/decimal"

// Transaction is one ledger row. Amounts are signed minor currency units:
// positive = income, negative = expense.
type Transaction struct {
	ID          int64
	AccountID   int64
	CategoryID  *int64 // nil = uncategorized
	AmountCents int64
	OccurredOn  string // canonical YYYY-MM-DD
	Description string

	// Joined display names, populated by list queries.
	AccountName  string
	CategoryName string
}

// FormatCents renders signed cents as a decimal currency string,
// e.g. -1250 -> "-12.50".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
