package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/model"
)

func newCategoryCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage transaction categories",
	}
	cmd.AddCommand(newCategoryListCommand(e))
	cmd.AddCommand(newCategoryAddCommand(e))
	return cmd
}

func newCategoryListCommand(e *env) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.ListCategories(model.CategoryKind(kind))
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Printf("%4d  %-20s %s\n", c.ID, c.Name, c.Kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (income or expense)")
	return cmd
}

func newCategoryAddCommand(e *env) *cobra.Command {
	var name string
	var kind string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := e.open()
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.CreateCategory(name, model.CategoryKind(kind))
			if err != nil {
				return err
			}
			fmt.Printf("Added category %d (%s)\n", id, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&kind, "kind", string(model.CategoryExpense), "category kind (income or expense)")

	return cmd
}
