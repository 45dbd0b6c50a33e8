package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/config"
	"github.com/pennybook-dev/pennybook/internal/ledger"
)

func newInitCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new pennybook ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(e, absDir)
		},
	}
}

func runInit(e *env, dir string) error {
	cfgPath := filepath.Join(dir, "pennybook.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default(dir)
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Open once to create the schema and seed categories.
	store, err := ledger.Open(cfg.Database.Path, e.logger())
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("closing ledger: %w", err)
	}

	fmt.Printf("Initialized pennybook ledger at %s\n", dir)
	return nil
}
