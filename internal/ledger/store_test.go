package ledger

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennybook-dev/pennybook/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	return openTestStoreAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func openTestStoreAt(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path, log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_SeedsDefaultCategories(t *testing.T) {
	s := openTestStore(t)

	categories, err := s.ListCategories("")
	require.NoError(t, err)
	assert.Len(t, categories, 12)

	income, err := s.ListCategories(model.CategoryIncome)
	require.NoError(t, err)
	assert.Len(t, income, 2)
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s := openTestStoreAt(t, path)
	require.NoError(t, s.Close())

	s = openTestStoreAt(t, path)
	categories, err := s.ListCategories("")
	require.NoError(t, err)
	assert.Len(t, categories, 12)
}

func TestEnsureDefaultAccount(t *testing.T) {
	s := openTestStore(t)

	id, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)

	again, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	accounts, err := s.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, model.AccountTypeCash, accounts[0].Type)
}

func TestEnsureDefaultAccount_ExistingAccountWins(t *testing.T) {
	s := openTestStore(t)

	created, err := s.CreateAccount("Chequing", model.AccountTypeChequing, "CAD", 0)
	require.NoError(t, err)

	id, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)
	assert.Equal(t, created, id)
}

func TestFindExactMatch(t *testing.T) {
	s := openTestStore(t)
	acct, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)

	_, err = s.InsertTransaction(acct, nil, -1850, "2025-01-15", "COFFEE ROASTERS")
	require.NoError(t, err)

	found, err := s.FindExactMatch(acct, "2025-01-15", -1850, "COFFEE ROASTERS")
	require.NoError(t, err)
	assert.True(t, found)

	// Any differing field misses.
	found, err = s.FindExactMatch(acct, "2025-01-16", -1850, "COFFEE ROASTERS")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.FindExactMatch(acct, "2025-01-15", -1851, "COFFEE ROASTERS")
	require.NoError(t, err)
	assert.False(t, found)

	// Description comparison is case-sensitive.
	found, err = s.FindExactMatch(acct, "2025-01-15", -1850, "coffee roasters")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListTransactions(t *testing.T) {
	s := openTestStore(t)
	acct, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)
	other, err := s.CreateAccount("Savings", model.AccountTypeSavings, "CAD", 0)
	require.NoError(t, err)

	_, err = s.InsertTransaction(acct, nil, -500, "2025-01-01", "OLDER")
	require.NoError(t, err)
	_, err = s.InsertTransaction(acct, nil, -700, "2025-01-05", "NEWER")
	require.NoError(t, err)
	_, err = s.InsertTransaction(other, nil, 100, "2025-01-03", "ELSEWHERE")
	require.NoError(t, err)

	txns, err := s.ListTransactions(10, nil)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "NEWER", txns[0].Description)
	assert.Equal(t, "Cash", txns[0].AccountName)
	assert.Equal(t, "Uncategorized", txns[0].CategoryName)

	txns, err = s.ListTransactions(10, &other)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "ELSEWHERE", txns[0].Description)
}

func TestDeleteTransaction(t *testing.T) {
	s := openTestStore(t)
	acct, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)

	id, err := s.InsertTransaction(acct, nil, -500, "2025-01-01", "GONE SOON")
	require.NoError(t, err)
	require.NoError(t, s.DeleteTransaction(id))

	txns, err := s.ListTransactions(10, nil)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestMonthTotals(t *testing.T) {
	s := openTestStore(t)
	acct, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)

	_, err = s.InsertTransaction(acct, nil, 350000, "2025-01-10", "INVOICE")
	require.NoError(t, err)
	_, err = s.InsertTransaction(acct, nil, -8213, "2025-01-22", "GROCERIES")
	require.NoError(t, err)
	_, err = s.InsertTransaction(acct, nil, -400, "2025-01-03", "SUBSCRIPTION")
	require.NoError(t, err)
	// A different month stays out of the totals.
	_, err = s.InsertTransaction(acct, nil, -9999, "2025-02-01", "NEXT MONTH")
	require.NoError(t, err)

	totals, err := s.MonthTotals("2025-01")
	require.NoError(t, err)
	assert.Equal(t, int64(350000), totals.IncomeCents)
	assert.Equal(t, int64(8613), totals.ExpenseCents)
	assert.Equal(t, int64(341387), totals.NetCents)
}

func TestSpendByCategory(t *testing.T) {
	s := openTestStore(t)
	acct, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)

	groceries, err := s.CreateCategory("Food Shop", model.CategoryExpense)
	require.NoError(t, err)

	_, err = s.InsertTransaction(acct, &groceries, -8000, "2025-01-05", "MART")
	require.NoError(t, err)
	_, err = s.InsertTransaction(acct, &groceries, -2000, "2025-01-12", "MART")
	require.NoError(t, err)
	_, err = s.InsertTransaction(acct, nil, -500, "2025-01-13", "MISC")
	require.NoError(t, err)
	// Income never shows up as spend.
	_, err = s.InsertTransaction(acct, nil, 10000, "2025-01-14", "PAY")
	require.NoError(t, err)

	spends, err := s.SpendByCategory("2025-01")
	require.NoError(t, err)
	require.Len(t, spends, 2)
	assert.Equal(t, "Food Shop", spends[0].Name)
	assert.Equal(t, int64(10000), spends[0].SpentCents)
	assert.Equal(t, "Uncategorized", spends[1].Name)
	assert.Equal(t, int64(500), spends[1].SpentCents)
}

func TestBudgets(t *testing.T) {
	s := openTestStore(t)
	acct, err := s.EnsureDefaultAccount("CAD")
	require.NoError(t, err)

	cat, err := s.CreateCategory("Takeout", model.CategoryExpense)
	require.NoError(t, err)

	id, err := s.UpsertBudget(cat, "2025-01", 40000)
	require.NoError(t, err)

	// Upsert for the same category+month updates in place.
	again, err := s.UpsertBudget(cat, "2025-01", 30000)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	budgets, err := s.ListBudgets("2025-01")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, int64(30000), budgets[0].LimitCents)

	_, err = s.InsertTransaction(acct, &cat, -1250, "2025-01-09", "NOODLES")
	require.NoError(t, err)

	lines, err := s.BudgetStatus("2025-01")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Takeout", lines[0].CategoryName)
	assert.Equal(t, int64(30000), lines[0].LimitCents)
	assert.Equal(t, int64(1250), lines[0].SpentCents)

	require.NoError(t, s.DeleteBudget(id))
	budgets, err = s.ListBudgets("2025-01")
	require.NoError(t, err)
	assert.Empty(t, budgets)
}
