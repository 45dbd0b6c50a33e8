package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/buildinfo"
	"github.com/pennybook-dev/pennybook/internal/config"
	"github.com/pennybook-dev/pennybook/internal/ledger"
)

// env carries the persistent flag values shared by every subcommand.
type env struct {
	configPath string
	verbose    bool
}

func (e *env) logger() *log.Logger {
	logger := log.New(os.Stderr)
	if e.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// open loads the config and opens the ledger store it points at. The
// caller owns closing the store.
func (e *env) open() (*config.Config, *ledger.Store, error) {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := ledger.Open(cfg.Database.Path, e.logger())
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:     "pennybook",
		Short:   "Personal finance ledger with bank statement import",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "pennybook.yaml", "path to pennybook.yaml")
	rootCmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand(e))
	rootCmd.AddCommand(newImportCommand(e))
	rootCmd.AddCommand(newAccountCommand(e))
	rootCmd.AddCommand(newCategoryCommand(e))
	rootCmd.AddCommand(newBudgetCommand(e))
	rootCmd.AddCommand(newReportCommand(e))

	return rootCmd
}
