package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/model"
)

func newAccountCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage ledger accounts",
	}
	cmd.AddCommand(newAccountListCommand(e))
	cmd.AddCommand(newAccountAddCommand(e))
	return cmd
}

func newAccountListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			accounts, err := store.ListAccounts()
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("No accounts. Add one with: pennybook account add --name <name>")
				return nil
			}
			for _, a := range accounts {
				fmt.Printf("%4d  %-24s %-10s %s %s\n",
					a.ID, a.Name, a.Type, a.Currency, model.FormatCents(a.OpeningBalanceCents))
			}
			return nil
		},
	}
}

func newAccountAddCommand(e *env) *cobra.Command {
	var name string
	var accountType string
	var currency string
	var opening string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			if currency == "" {
				currency = cfg.Defaults.Currency
			}

			openingCents, err := parseCents(opening)
			if err != nil {
				return fmt.Errorf("parsing --opening: %w", err)
			}

			id, err := store.CreateAccount(name, model.AccountType(accountType), currency, openingCents)
			if err != nil {
				return err
			}
			fmt.Printf("Added account %d (%s)\n", id, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeChequing), "account type (chequing, savings, credit, cash)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default: config default)")
	cmd.Flags().StringVar(&opening, "opening", "0", "opening balance, e.g. 125.50")

	return cmd
}

// parseCents converts a decimal currency string to signed cents.
func parseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
