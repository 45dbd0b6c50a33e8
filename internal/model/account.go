package model

// AccountType classifies ledger accounts.
type AccountType string

const (
	AccountTypeChequing AccountType = "chequing"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeCash     AccountType = "cash"
)

// Account represents a row in the accounts table.
type Account struct {
	ID                  int64
	Name                string
	Type                AccountType
	Currency            string
	OpeningBalanceCents int64
}
