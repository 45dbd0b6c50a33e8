package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/model"
)

func newReportCommand(e *env) *cobra.Command {
	var month string
	var recent int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a monthly summary",
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

			totals, err := store.MonthTotals(month)
			if err != nil {
				return err
			}
			fmt.Printf("%s  income %s  expenses %s  net %s\n",
				totals.Month,
				model.FormatCents(totals.IncomeCents),
				model.FormatCents(totals.ExpenseCents),
				model.FormatCents(totals.NetCents))

			spends, err := store.SpendByCategory(month)
			if err != nil {
				return err
			}
			if len(spends) > 0 {
				fmt.Println("\nSpend by category:")
				for _, cs := range spends {
					fmt.Printf("  %-20s %10s\n", cs.Name, model.FormatCents(cs.SpentCents))
				}
			}

			if recent > 0 {
				txns, err := store.RecentTransactions(recent)
				if err != nil {
					return err
				}
				if len(txns) > 0 {
					fmt.Println("\nRecent transactions:")
					for _, t := range txns {
						fmt.Printf("  %s  %-28s %-16s %10s\n",
							t.OccurredOn, t.Description, t.CategoryName, model.FormatCents(t.AmountCents))
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", currentMonth(), "month as YYYY-MM")
	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent transactions to show (0 = none)")

	return cmd
}
