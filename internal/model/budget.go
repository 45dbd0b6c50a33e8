package model

// Budget is a monthly spending limit for one category.
type Budget struct {
	ID         int64
	CategoryID int64
	Month      string // YYYY-MM
	LimitCents int64
}
