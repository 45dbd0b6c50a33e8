package ledger

import (
	"fmt"

	"github.com/pennybook-dev/pennybook/internal/model"
)

// defaultCategories are seeded on first open; re-seeding only inserts
// names that are missing.
var defaultCategories = []model.Category{
	{Name: "Salary", Kind: model.CategoryIncome},
	{Name: "Other Income", Kind: model.CategoryIncome},
	{Name: "Groceries", Kind: model.CategoryExpense},
	{Name: "Rent", Kind: model.CategoryExpense},
	{Name: "Utilities", Kind: model.CategoryExpense},
	{Name: "Transport", Kind: model.CategoryExpense},
	{Name: "Eating Out", Kind: model.CategoryExpense},
	{Name: "Subscriptions", Kind: model.CategoryExpense},
	{Name: "Shopping", Kind: model.CategoryExpense},
	{Name: "Health", Kind: model.CategoryExpense},
	{Name: "Entertainment", Kind: model.CategoryExpense},
	{Name: "Other Expense", Kind: model.CategoryExpense},
}

func (s *Store) seedCategories() error {
	existing, err := s.ListCategories("")
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(existing))
	for _, c := range existing {
		names[c.Name] = true
	}

	for _, c := range defaultCategories {
		if names[c.Name] {
			continue
		}
		if _, err := s.CreateCategory(c.Name, c.Kind); err != nil {
			return err
		}
	}
	return nil
}

// CreateCategory adds a category and returns its id.
func (s *Store) CreateCategory(name string, kind model.CategoryKind) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO categories(name, kind) VALUES(?, ?);`, name, string(kind))
	if err != nil {
		return 0, fmt.Errorf("inserting category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading category id: %w", err)
	}
	return id, nil
}

// ListCategories returns categories ordered by kind then name. An empty
// kind returns all categories.
func (s *Store) ListCategories(kind model.CategoryKind) ([]model.Category, error) {
	query := `SELECT id, name, kind FROM categories`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY kind ASC, name ASC;`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Kind); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
