package ledger

import (
	"database/sql"
	"fmt"

	"github.com/pennybook-dev/pennybook/internal/model"
)

// UpsertBudget sets the monthly limit for a category, replacing any
// existing limit for the same category and month. Returns the budget id.
func (s *Store) UpsertBudget(categoryID int64, month string, limitCents int64) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		`SELECT id FROM budgets WHERE category_id = ? AND month = ?;`,
		categoryID, month,
	).Scan(&id)

	if err == sql.ErrNoRows {
		res, err := s.db.Exec(
			`INSERT INTO budgets(category_id, month, limit_cents) VALUES(?, ?, ?);`,
			categoryID, month, limitCents,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting budget: %w", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading budget id: %w", err)
		}
		return newID, nil
	}
	if err != nil {
		return 0, fmt.Errorf("looking up budget: %w", err)
	}

	if _, err := s.db.Exec(`UPDATE budgets SET limit_cents = ? WHERE id = ?;`, limitCents, id); err != nil {
		return 0, fmt.Errorf("updating budget: %w", err)
	}
	return id, nil
}

// ListBudgets returns the budgets for one month ordered by category id.
func (s *Store) ListBudgets(month string) ([]model.Budget, error) {
	rows, err := s.db.Query(`
		SELECT id, category_id, month, limit_cents
		FROM budgets
		WHERE month = ?
		ORDER BY category_id ASC;`, month)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Month, &b.LimitCents); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// DeleteBudget removes one budget row.
func (s *Store) DeleteBudget(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM budgets WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("deleting budget %d: %w", id, err)
	}
	return nil
}

// BudgetLine pairs a month's budget with the spend recorded against its
// category. SpentCents is positive.
type BudgetLine struct {
	CategoryName string
	Month        string
	LimitCents   int64
	SpentCents   int64
}

// BudgetStatus returns each budget for the month with the actual spend
// against it, ordered by category name.
func (s *Store) BudgetStatus(month string) ([]BudgetLine, error) {
	rows, err := s.db.Query(`
		SELECT
			c.name,
			b.month,
			b.limit_cents,
			COALESCE((
				SELECT ABS(SUM(t.amount_cents))
				FROM transactions t
				WHERE t.category_id = b.category_id
				  AND substr(t.occurred_on, 1, 7) = b.month
				  AND t.amount_cents < 0
			), 0) AS spent_cents
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.month = ?
		ORDER BY c.name ASC;`, month)
	if err != nil {
		return nil, fmt.Errorf("querying budget status: %w", err)
	}
	defer rows.Close()

	var lines []BudgetLine
	for rows.Next() {
		var l BudgetLine
		if err := rows.Scan(&l.CategoryName, &l.Month, &l.LimitCents, &l.SpentCents); err != nil {
			return nil, fmt.Errorf("scanning budget status: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
