package ledger

import (
	"database/sql"
	"fmt"

	"github.com/pennybook-dev/pennybook/internal/model"
)

// CreateAccount adds an account and returns its id.
func (s *Store) CreateAccount(name string, accountType model.AccountType, currency string, openingBalanceCents int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO accounts(name, type, currency, opening_balance_cents)
		VALUES(?, ?, ?, ?);`,
		name, string(accountType), currency, openingBalanceCents,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting account: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading account id: %w", err)
	}
	return id, nil
}

// ListAccounts returns all accounts ordered by name.
func (s *Store) ListAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`
		SELECT id, name, type, currency, opening_balance_cents
		FROM accounts
		ORDER BY name ASC;`)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Currency, &a.OpeningBalanceCents); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// EnsureDefaultAccount returns the id of the first account, creating a
// default "Cash" account when none exist yet.
func (s *Store) EnsureDefaultAccount(currency string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM accounts ORDER BY id ASC LIMIT 1;`).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up default account: %w", err)
	}
	return s.CreateAccount("Cash", model.AccountTypeCash, currency, 0)
}

// DeleteAccount removes an account; its transactions cascade.
func (s *Store) DeleteAccount(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM accounts WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("deleting account %d: %w", id, err)
	}
	return nil
}
