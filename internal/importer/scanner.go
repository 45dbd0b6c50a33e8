package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Mode selects whether a scan persists accepted rows.
type Mode string

const (
	// ModeDryRun classifies every row without writing anything.
	ModeDryRun Mode = "dry-run"
	// ModeCommit additionally inserts each accepted row into the ledger.
	ModeCommit Mode = "commit"
)

// Ledger is the storage collaborator the scanner reads and appends
// through. The pipeline never updates or deletes existing rows.
type Ledger interface {
	FindExactMatch(accountID int64, occurredOn string, amountCents int64, description string) (bool, error)
	InsertTransaction(accountID int64, categoryID *int64, amountCents int64, occurredOn, description string) (int64, error)
}

// Scanner drives the import pipeline over one bank statement at a time.
type Scanner struct {
	ledger Ledger
	logger *log.Logger
}

// NewScanner creates a Scanner writing through the given ledger.
func NewScanner(ledger Ledger, logger *log.Logger) *Scanner {
	return &Scanner{ledger: ledger, logger: logger}
}

// recordKey identifies a candidate within one scan pass; the account is
// fixed per scan so it is not part of the key.
type recordKey struct {
	occurredOn  string
	amountCents int64
	description string
}

// Scan runs one pass over a statement. The mapping is validated before
// any row is read; after that, a bad row is isolated and never aborts the
// scan. Dry-run and commit share this single code path with the mode
// gating only the insert, so both classify an unchanged file identically.
// Rows accepted earlier in the same pass count as duplicates for later
// identical rows in either mode, mirroring what the progressive commit
// would produce.
func (s *Scanner) Scan(r io.Reader, mapping Mapping, accountID int64, mode Mode) (*Report, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // bank exports are ragged; tolerate short rows

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return buildReport(nil), nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var outcomes []RowOutcome
	seen := make(map[recordKey]bool)

	line := 1 // header
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			outcomes = append(outcomes, RowOutcome{
				Line:   line,
				Status: StatusFailed,
				Err:    fmt.Sprintf("line %d: %v", line, err),
			})
			continue
		}
		outcomes = append(outcomes, s.scanRow(row, mapping, accountID, mode, seen, line))
	}

	report := buildReport(outcomes)
	s.logger.Debug("scan complete",
		"mode", mode,
		"accepted", report.Accepted,
		"duplicates", report.Duplicates,
		"failed", report.Failed)
	return report, nil
}

func (s *Scanner) scanRow(row []string, m Mapping, accountID int64, mode Mode, seen map[recordKey]bool, line int) RowOutcome {
	failed := func(err error) RowOutcome {
		return RowOutcome{Line: line, Status: StatusFailed, Err: fmt.Sprintf("line %d: %v", line, err)}
	}

	occurredOn, err := NormalizeDate(cell(row, m.Date))
	if err != nil {
		return failed(err)
	}

	cents, err := resolveAmount(row, m)
	if err != nil {
		return failed(err)
	}

	desc := cell(row, m.Description)
	rec := Record{AccountID: accountID, OccurredOn: occurredOn, AmountCents: cents, Description: desc}
	key := recordKey{occurredOn: occurredOn, amountCents: cents, description: desc}

	exists, err := s.ledger.FindExactMatch(accountID, occurredOn, cents, desc)
	if err != nil {
		return failed(fmt.Errorf("checking for duplicate: %w", err))
	}
	if exists || seen[key] {
		return RowOutcome{Line: line, Status: StatusDuplicate, Record: rec}
	}

	if mode == ModeCommit {
		// Each accepted row is written immediately; a later row's failure
		// never undoes an earlier commit.
		if _, err := s.ledger.InsertTransaction(accountID, nil, cents, occurredOn, desc); err != nil {
			return failed(fmt.Errorf("inserting transaction: %w", err))
		}
	}

	seen[key] = true
	return RowOutcome{Line: line, Status: StatusAccepted, Record: rec}
}

// ScanFile opens path and runs Scan, closing the file on every path.
func (s *Scanner) ScanFile(path string, mapping Mapping, accountID int64, mode Mode) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()
	return s.Scan(f, mapping, accountID, mode)
}

// ReadHeader returns the header row of a statement file with any UTF-8
// byte-order mark stripped, or nil for an empty file.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header, nil
}

// cell returns the idx'th field of a row, trimmed, or "" when the role is
// unset or the row is too short for the index.
func cell(row []string, idx int) string {
	if idx == Unset || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
