package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/model"
)

func newBudgetCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
	}
	cmd.AddCommand(newBudgetSetCommand(e))
	cmd.AddCommand(newBudgetListCommand(e))
	return cmd
}

func newBudgetSetCommand(e *env) *cobra.Command {
	var categoryID int64
	var month string
	var limit string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the monthly limit for a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMonth(month); err != nil {
				return err
			}

			limitCents, err := parseCents(limit)
			if err != nil {
				return fmt.Errorf("parsing --limit: %w", err)
			}

			_, store, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := store.UpsertBudget(categoryID, month, limitCents); err != nil {
				return err
			}
			fmt.Printf("Budget for category %d in %s set to %s\n", categoryID, month, model.FormatCents(limitCents))
			return nil
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&month, "month", currentMonth(), "month as YYYY-MM")
	cmd.Flags().StringVar(&limit, "limit", "", "monthly limit, e.g. 400.00 (required)")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func newBudgetListCommand(e *env) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show budgets and spend for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMonth(month); err != nil {
				return err
			}

			_, store, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			lines, err := store.BudgetStatus(month)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Printf("No budgets for %s.\n", month)
				return nil
			}
			for _, l := range lines {
				fmt.Printf("%-20s spent %10s of %10s\n",
					l.CategoryName, model.FormatCents(l.SpentCents), model.FormatCents(l.LimitCents))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", currentMonth(), "month as YYYY-MM")
	return cmd
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	return nil
}
