package ledger

import (
	"database/sql"
	"fmt"

	"github.com/pennybook-dev/pennybook/internal/model"
)

// FindExactMatch reports whether a transaction identical in account,
// date, cent amount, and description already exists. A NULL description
// compares as empty; the comparison is case-sensitive.
func (s *Store) FindExactMatch(accountID int64, occurredOn string, amountCents int64, description string) (bool, error) {
	var one int
	err := s.db.QueryRow(`
		SELECT 1
		FROM transactions
		WHERE account_id = ?
		  AND occurred_on = ?
		  AND amount_cents = ?
		  AND COALESCE(description, '') = ?
		LIMIT 1;`,
		accountID, occurredOn, amountCents, description,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying for duplicate: %w", err)
	}
	return true, nil
}

// InsertTransaction appends one transaction and returns its id.
func (s *Store) InsertTransaction(accountID int64, categoryID *int64, amountCents int64, occurredOn, description string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO transactions(account_id, category_id, amount_cents, description, occurred_on)
		VALUES(?, ?, ?, ?, ?);`,
		accountID, categoryID, amountCents, description, occurredOn,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading transaction id: %w", err)
	}
	return id, nil
}

// ListTransactions returns the most recent transactions, newest first,
// optionally filtered by account.
func (s *Store) ListTransactions(limit int, accountID *int64) ([]model.Transaction, error) {
	query := `
		SELECT
			t.id,
			t.account_id,
			t.category_id,
			t.amount_cents,
			t.occurred_on,
			COALESCE(t.description, '') AS description,
			a.name AS account_name,
			COALESCE(c.name, 'Uncategorized') AS category_name
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		LEFT JOIN categories c ON c.id = t.category_id`
	args := []any{}

	if accountID != nil {
		query += ` WHERE t.account_id = ?`
		args = append(args, *accountID)
	}

	query += `
		ORDER BY t.occurred_on DESC, t.id DESC
		LIMIT ?;`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.CategoryID, &t.AmountCents,
			&t.OccurredOn, &t.Description, &t.AccountName, &t.CategoryName); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// DeleteTransaction removes one transaction by id.
func (s *Store) DeleteTransaction(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM transactions WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	return nil
}
