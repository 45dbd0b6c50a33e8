package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennybook-dev/pennybook/internal/auditlog"
	"github.com/pennybook-dev/pennybook/internal/importer"
)

// importOptions collects the import command's flag values.
type importOptions struct {
	path      string
	accountID int64
	commit    bool

	// Column overrides; importer.Unset keeps the inferred assignment.
	dateCol   int
	descCol   int
	amountCol int
	debitCol  int
	creditCol int
}

func newImportCommand(e *env) *cobra.Command {
	opts := importOptions{}

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Preview or commit a bank statement import",
		Long: `Import reads a bank statement export, infers which column holds the
date, description, and amount, and reports what an import would do:
how many rows are new, how many already exist in the ledger, and which
rows cannot be parsed. Nothing is written unless --commit is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.path = args[0]
			return runImport(e, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.accountID, "account", 0, "ledger account id (0 = config default or first account)")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "write accepted rows to the ledger")
	cmd.Flags().IntVar(&opts.dateCol, "date-col", importer.Unset, "override date column index")
	cmd.Flags().IntVar(&opts.descCol, "desc-col", importer.Unset, "override description column index")
	cmd.Flags().IntVar(&opts.amountCol, "amount-col", importer.Unset, "override amount column index")
	cmd.Flags().IntVar(&opts.debitCol, "debit-col", importer.Unset, "override debit column index")
	cmd.Flags().IntVar(&opts.creditCol, "credit-col", importer.Unset, "override credit column index")

	return cmd
}

func runImport(e *env, opts importOptions) error {
	cfg, store, err := e.open()
	if err != nil {
		return err
	}
	defer store.Close()

	accountID := opts.accountID
	if accountID == 0 {
		accountID = cfg.Defaults.AccountID
	}
	if accountID == 0 {
		accountID, err = store.EnsureDefaultAccount(cfg.Defaults.Currency)
		if err != nil {
			return err
		}
	}

	header, err := importer.ReadHeader(opts.path)
	if err != nil {
		return err
	}

	mapping := importer.InferMapping(header)
	applyOverrides(&mapping, opts)
	if err := mapping.Validate(); err != nil {
		return err
	}

	fmt.Printf("Mapping: %s\n", mapping)

	scanner := importer.NewScanner(store, e.logger())

	report, err := scanner.ScanFile(opts.path, mapping, accountID, importer.ModeDryRun)
	if err != nil {
		return err
	}
	fmt.Printf("Dry-run: %s\n", report.Summary())

	if !opts.commit {
		fmt.Println("Re-run with --commit to apply.")
		return nil
	}

	report, err = scanner.ScanFile(opts.path, mapping, accountID, importer.ModeCommit)
	if err != nil {
		return err
	}
	fmt.Printf("Committed: %s\n", report.Summary())

	entry := auditlog.Entry{
		Timestamp:  time.Now(),
		File:       filepath.Base(opts.path),
		AccountID:  accountID,
		Mode:       string(importer.ModeCommit),
		Accepted:   report.Accepted,
		Duplicates: report.Duplicates,
		Failed:     report.Failed,
	}
	if err := auditlog.Append(filepath.Dir(cfg.Database.Path), []auditlog.Entry{entry}); err != nil {
		return fmt.Errorf("recording import run: %w", err)
	}

	return nil
}

func applyOverrides(m *importer.Mapping, opts importOptions) {
	if opts.dateCol != importer.Unset {
		m.Date = opts.dateCol
	}
	if opts.descCol != importer.Unset {
		m.Description = opts.descCol
	}
	if opts.amountCol != importer.Unset {
		m.Amount = opts.amountCol
	}
	if opts.debitCol != importer.Unset {
		m.Debit = opts.debitCol
	}
	if opts.creditCol != importer.Unset {
		m.Credit = opts.creditCol
	}
}
