package ledger

import (
	"fmt"

	"github.com/pennybook-dev/pennybook/internal/model"
)

// MonthTotals summarizes one calendar month. Expenses are stored negative
// in the ledger but reported here as a positive total.
type MonthTotals struct {
	Month        string // YYYY-MM
	IncomeCents  int64
	ExpenseCents int64
	NetCents     int64
}

// CategorySpend is one category's positive spend for a month.
type CategorySpend struct {
	Name       string
	SpentCents int64
}

// MonthTotals returns income, expense, and net totals for a month.
func (s *Store) MonthTotals(month string) (MonthTotals, error) {
	totals := MonthTotals{Month: month}

	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM transactions
		WHERE substr(occurred_on, 1, 7) = ?
		  AND amount_cents > 0;`, month).Scan(&totals.IncomeCents)
	if err != nil {
		return MonthTotals{}, fmt.Errorf("summing income: %w", err)
	}

	var expenseRaw int64
	err = s.db.QueryRow(`
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM transactions
		WHERE substr(occurred_on, 1, 7) = ?
		  AND amount_cents < 0;`, month).Scan(&expenseRaw)
	if err != nil {
		return MonthTotals{}, fmt.Errorf("summing expenses: %w", err)
	}

	if expenseRaw < 0 {
		expenseRaw = -expenseRaw
	}
	totals.ExpenseCents = expenseRaw
	totals.NetCents = totals.IncomeCents - totals.ExpenseCents
	return totals, nil
}

// SpendByCategory returns the month's expense totals per category, largest
// first. Transactions without a category fall under "Uncategorized".
func (s *Store) SpendByCategory(month string) ([]CategorySpend, error) {
	rows, err := s.db.Query(`
		SELECT
			COALESCE(c.name, 'Uncategorized') AS category_name,
			ABS(COALESCE(SUM(t.amount_cents), 0)) AS total_cents
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE substr(t.occurred_on, 1, 7) = ?
		  AND t.amount_cents < 0
		GROUP BY COALESCE(c.name, 'Uncategorized')
		ORDER BY ABS(COALESCE(SUM(t.amount_cents), 0)) DESC;`, month)
	if err != nil {
		return nil, fmt.Errorf("querying spend by category: %w", err)
	}
	defer rows.Close()

	var spends []CategorySpend
	for rows.Next() {
		var cs CategorySpend
		if err := rows.Scan(&cs.Name, &cs.SpentCents); err != nil {
			return nil, fmt.Errorf("scanning spend by category: %w", err)
		}
		spends = append(spends, cs)
	}
	return spends, rows.Err()
}

// RecentTransactions returns the latest transactions across all accounts.
func (s *Store) RecentTransactions(limit int) ([]model.Transaction, error) {
	return s.ListTransactions(limit, nil)
}
